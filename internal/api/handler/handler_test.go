package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	scoringmocks "github.com/vfg2006/consultorpro-api/internal/usecases/scoring/mocks"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
	trackingmocks "github.com/vfg2006/consultorpro-api/internal/usecases/tracking/mocks"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func serve(method, pattern, target string, h http.Handler, body string) *httptest.ResponseRecorder {
	rt := httprouter.New()
	rt.Handler(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "erro de metas",
			err:  tracking.NewTrackingError(tracking.ErrGoalNotFound, apiErrors.ErrNotFound, ""),
			want: apiErrors.ErrNotFound,
		},
		{
			name: "erro embrulhado",
			err:  fmt.Errorf("contexto: %w", planning.NewPlanningError(planning.ErrOpportunityAlreadyConverted, apiErrors.ErrConflict, "")),
			want: apiErrors.ErrConflict,
		},
		{
			name: "erro de score",
			err:  scoring.NewScoringError(scoring.ErrInvalidMonthYear, apiErrors.ErrInvalidFormat, ""),
			want: apiErrors.ErrInvalidFormat,
		},
		{
			name: "erro sem tipo",
			err:  errors.New("falhou"),
			want: apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestWriteUsecaseError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "falha de banco não expõe detalhes",
			err:         planning.NewPlanningError(planning.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Erro interno ao processar requisição",
		},
		{
			name:        "falha do provedor externo mantém a mensagem",
			err:         summarizing.NewSummaryError(summarizing.ErrProviderNotConfigured, apiErrors.ErrExternalService, ""),
			wantStatus:  http.StatusBadGateway,
			wantMessage: summarizing.NewSummaryError(summarizing.ErrProviderNotConfigured, apiErrors.ErrExternalService, "").Error(),
		},
		{
			name:        "validação mantém a mensagem",
			err:         tracking.NewTrackingError(tracking.ErrTitleRequired, apiErrors.ErrMissingRequiredData, ""),
			wantStatus:  http.StatusBadRequest,
			wantMessage: tracking.NewTrackingError(tracking.ErrTitleRequired, apiErrors.ErrMissingRequiredData, "").Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeUsecaseError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestGetGoal(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m *trackingmocks.MockGoalTracker)
		wantStatus int
	}{
		{
			name: "meta encontrada",
			setup: func(m *trackingmocks.MockGoalTracker) {
				m.EXPECT().GetGoal(gomock.Any(), "g1").Return(&domain.GoalProgress{
					Goal:     domain.Goal{ID: "g1"},
					Progress: 50,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "meta inexistente",
			setup: func(m *trackingmocks.MockGoalTracker) {
				m.EXPECT().GetGoal(gomock.Any(), "g1").
					Return(nil, tracking.NewGoalTrackingError(tracking.ErrGoalNotFound, apiErrors.ErrNotFound, "g1", ""))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := trackingmocks.NewMockGoalTracker(ctrl)
			tt.setup(tracker)

			rec := serve(http.MethodGet, "/v1/goals/:id", "/v1/goals/g1", GetGoal(tracker), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateGoalCurrentValue_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingmocks.NewMockGoalTracker(ctrl)

	rec := serve(http.MethodPut, "/v1/goals/:id/current-value", "/v1/goals/g1/current-value",
		UpdateGoalCurrentValue(tracker), "{invalido")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAtRiskGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingmocks.NewMockGoalTracker(ctrl)

	rec := serve(http.MethodGet, "/v1/at-risk-goals", "/v1/at-risk-goals", ListAtRiskGoals(tracker), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tracker.EXPECT().ListAtRisk(gomock.Any(), "2025-03").Return([]domain.GoalProgress{
		{Goal: domain.Goal{ID: "g1"}, AtRisk: true},
	}, nil)

	rec = serve(http.MethodGet, "/v1/at-risk-goals", "/v1/at-risk-goals?month=2025-03", ListAtRiskGoals(tracker), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var goals []domain.GoalProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
	require.Len(t, goals, 1)
	assert.True(t, goals[0].AtRisk)
}

func TestGetRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)

	scorer.EXPECT().GetRanking(gomock.Any(), "2025-03").Return(&domain.PerformanceRanking{
		MonthYear: "2025-03",
		Ranking: []domain.PerformanceRankingItem{
			{ClientID: "cli01", Position: 1, PositionChange: 2},
		},
	}, nil)

	rec := serve(http.MethodGet, "/v1/performance/ranking", "/v1/performance/ranking?month=2025-03", GetRanking(scorer), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ranking domain.PerformanceRanking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranking))
	require.Len(t, ranking.Ranking, 1)
	assert.Equal(t, 2, ranking.Ranking[0].PositionChange)
}

func TestGetClientPerformance_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)

	scorer.EXPECT().GetPerformance(gomock.Any(), "cli01", "2025-03").
		Return(nil, scoring.NewClientScoringError(scoring.ErrPerformanceNotFound, apiErrors.ErrNotFound, "cli01", "2025-03"))

	rec := serve(http.MethodGet, "/v1/clients/:id/performance/:month", "/v1/clients/cli01/performance/2025-03",
		GetClientPerformance(scorer), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
