package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/memory"
	"github.com/vfg2006/consultorpro-api/internal/api/handler"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fakeJob struct {
	triggered int
}

func (f *fakeJob) Start(context.Context) error { return nil }

func (f *fakeJob) TriggerManualSync() { f.triggered++ }

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

type testServer struct {
	handler http.Handler
	job     *fakeJob
	admin   string
	viewer  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour},
		Cors: config.Cors{AllowedOrigins: []string{"*"}},
	}

	actionRepo := memory.NewActionRepository()
	goalRepo := memory.NewGoalRepository()
	opportunityRepo := memory.NewOpportunityRepository()
	diagnosticRepo := memory.NewDiagnosticRepository()
	performanceRepo := memory.NewPerformanceRepository()

	authenticator := authenticating.NewService(memory.NewUserRepository(), cfg.Auth)
	planner := planning.NewService(actionRepo, opportunityRepo)
	job := &fakeJob{}

	services := Services{
		Authenticator: authenticator,
		Consultant: consulting.NewService(consulting.Repositories{
			Consultancy: memory.NewConsultancyRepository(),
			Goal:        goalRepo,
			Action:      actionRepo,
			Opportunity: opportunityRepo,
			Diagnostic:  diagnosticRepo,
			Performance: performanceRepo,
		}),
		Scorer:      scoring.NewService(performanceRepo, memory.NewPerformanceRankingRepository()),
		GoalTracker: tracking.NewService(goalRepo),
		Planner:     planner,
		Diagnoser:   diagnosing.NewService(diagnosticRepo, actionRepo, planner),
		Summarizer:  summarizing.NewService(nil),
		CronJobs:    handler.CronJobs{"goal-risk": job},
	}

	for _, u := range []domain.User{
		{Name: "Admin", Email: "admin@consultorpro.com", PasswordHash: "Senha123", RoleID: domain.RoleAdmin},
		{Name: "Leitor", Email: "leitor@consultorpro.com", PasswordHash: "Senha123", RoleID: domain.RoleViewer},
	} {
		_, err := authenticator.CreateUser(ctx, &u)
		require.NoError(t, err)
	}

	adminToken, err := authenticator.LoginUser(ctx, "admin@consultorpro.com", "Senha123")
	require.NoError(t, err)
	viewerToken, err := authenticator.LoginUser(ctx, "leitor@consultorpro.com", "Senha123")
	require.NoError(t, err)

	return &testServer{
		handler: NewHandler(cfg, services),
		job:     job,
		admin:   adminToken,
		viewer:  viewerToken,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestNewHandler_RegistersRoutes(t *testing.T) {
	assert.NotPanics(t, func() {
		newTestServer(t)
	})
}

func TestServer_Authentication(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = srv.do(t, http.MethodGet, "/v1/consultancies?month=2025-03", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/login", "", handler.LoginRequest{Email: "admin@consultorpro.com", Password: "errada1A"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/me", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[domain.User](t, rec)
	assert.Equal(t, "leitor@consultorpro.com", me.Email)
	assert.Empty(t, me.PasswordHash)
}

func TestServer_RoleGates(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		wantStatus int
	}{
		{
			name:       "leitor não cria consultoria",
			method:     http.MethodPost,
			path:       "/v1/consultancies",
			token:      srv.viewer,
			body:       domain.Consultancy{ClientID: "cli01", MonthYear: "2025-03"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "leitor lista consultorias",
			method:     http.MethodGet,
			path:       "/v1/consultancies?month=2025-03",
			token:      srv.viewer,
			wantStatus: http.StatusOK,
		},
		{
			name:       "leitor não dispara cron",
			method:     http.MethodPost,
			path:       "/v1/cron/run/all",
			token:      srv.viewer,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "leitor não lista usuários",
			method:     http.MethodGet,
			path:       "/v1/users",
			token:      srv.viewer,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin lista usuários",
			method:     http.MethodGet,
			path:       "/v1/users",
			token:      srv.admin,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_ConsultancyFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/v1/consultancies", srv.admin, domain.Consultancy{
		ClientID: "cli01", ClientName: "Alfa Net", MonthYear: "2025-03",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	consultancy := decode[domain.Consultancy](t, rec)
	assert.Equal(t, "cli01-2025-03", consultancy.ID)

	rec = srv.do(t, http.MethodPost, "/v1/consultancies", srv.admin, domain.Consultancy{ClientID: "cli01", MonthYear: "2025-03"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/consultancies", srv.admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/consultancies?month=2025-03", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Consultancy](t, rec), 1)

	base := "/v1/consultancies/" + consultancy.ID

	rec = srv.do(t, http.MethodPost, base+"/actions", srv.admin, map[string]any{
		"title": "Revisar régua de cobrança", "impact": "high", "effort": "low",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	action := decode[domain.Action](t, rec)
	assert.Equal(t, domain.QuadrantQuickWins, action.Quadrant)
	assert.Equal(t, consultancy.ID, action.ConsultancyID)

	rec = srv.do(t, http.MethodPost, base+"/actions", srv.admin, map[string]any{
		"title": "Inválida", "impact": "enorme", "effort": "low",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/actions/"+action.ID+"/move", srv.admin, handler.MoveActionRequest{Quadrant: domain.QuadrantProjects})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	moved := decode[domain.Action](t, rec)
	assert.Equal(t, domain.LevelHigh, moved.Impact)
	assert.Equal(t, domain.LevelHigh, moved.Effort)
	assert.Equal(t, domain.QuadrantProjects, moved.Quadrant)

	rec = srv.do(t, http.MethodGet, base+"/matrix", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	matrix := decode[domain.ActionMatrix](t, rec)
	assert.Equal(t, 1, matrix.Total)
	assert.Len(t, matrix.Quadrants[domain.QuadrantProjects], 1)

	rec = srv.do(t, http.MethodPost, base+"/goals", srv.admin, map[string]any{
		"title": "Novos contratos", "target_value": 40, "current_value": 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goal := decode[domain.GoalProgress](t, rec)
	assert.Equal(t, 25.0, goal.Progress)

	rec = srv.do(t, http.MethodPut, "/v1/goals/"+goal.Goal.ID+"/current-value", srv.admin, handler.CurrentValueRequest{CurrentValue: 50})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[domain.GoalProgress](t, rec)
	assert.Equal(t, 100.0, updated.Progress)
	assert.Equal(t, 125.0, updated.RawProgress)

	rec = srv.do(t, http.MethodPost, base+"/opportunities", srv.admin, map[string]any{
		"title": "Plano empresarial", "estimated_value": "15000.50", "probability": "high",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opportunity := decode[domain.Opportunity](t, rec)

	rec = srv.do(t, http.MethodPost, "/v1/opportunities/"+opportunity.ID+"/promote", srv.admin, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	promoted := decode[domain.Action](t, rec)
	require.NotNil(t, promoted.OpportunityID)
	assert.Equal(t, opportunity.ID, *promoted.OpportunityID)
	assert.Equal(t, domain.LevelHigh, promoted.Impact)
	assert.Equal(t, domain.LevelMedium, promoted.Effort)

	rec = srv.do(t, http.MethodPost, "/v1/opportunities/"+opportunity.ID+"/promote", srv.admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, base+"/dashboard", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := decode[domain.Dashboard](t, rec)
	assert.Equal(t, 1, dashboard.Goals.Total)
	assert.Equal(t, 2, dashboard.Actions.Total)
	assert.Equal(t, 1, dashboard.Opportunities.Converted)

	rec = srv.do(t, http.MethodGet, "/v1/months/2025-03/overview", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	overview := decode[domain.MonthOverview](t, rec)
	assert.Equal(t, 1, overview.Consultancies)
	assert.Equal(t, 2, overview.Actions.Total)
	assert.Equal(t, 1, overview.Opportunities.Converted)

	rec = srv.do(t, http.MethodGet, "/v1/months/2025_03/overview", srv.viewer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/consultancies?month=%25", srv.viewer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/consultancies/inexistente-2025-03/dashboard", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[domain.Dashboard](t, rec)
	assert.Zero(t, empty.Goals.Total)
	assert.Zero(t, empty.Actions.Total)

	rec = srv.do(t, http.MethodGet, base+"/timeline?limit=2", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.TimelineEvent](t, rec), 2)

	rec = srv.do(t, http.MethodGet, base+"/timeline?limit=abc", srv.viewer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Diagnostic(t *testing.T) {
	srv := newTestServer(t)
	base := "/v1/consultancies/cli01-2025-03/diagnostic"

	rec := srv.do(t, http.MethodPut, base, srv.admin, map[string]any{
		"strengths":  []string{"Rede estável"},
		"weaknesses": []string{"Cobrança manual", "Sem CRM"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, base+"/actions", srv.admin, map[string]any{"kind": "weakness", "index": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	action := decode[domain.Action](t, rec)
	assert.Equal(t, "Sem CRM", action.Title)
	assert.NotNil(t, action.DiagnosticID)

	rec = srv.do(t, http.MethodPost, base+"/actions", srv.admin, map[string]any{"kind": "weakness", "index": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, base+"/summary", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[domain.DiagnosticSummary](t, rec)
	assert.Equal(t, 2, summary.Weaknesses)
	assert.Equal(t, 1, summary.LinkedActions)
}

func TestServer_Performance(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/v1/performance/score", srv.viewer, map[string]any{
		"churn_rate": 1.5, "nps": 72, "delinquency_rate": 1.5, "new_clients": 40, "cancelled_clients": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	evaluation := decode[scoring.Evaluation](t, rec)
	assert.Equal(t, 100, evaluation.Score)
	assert.Equal(t, domain.BandExcellent, evaluation.Band)

	for _, p := range []map[string]any{
		{"client_id": "cli01", "month_year": "2025-03", "churn_rate": 1.5, "nps": 72, "delinquency_rate": 1.5, "new_clients": 40, "cancelled_clients": 10},
		{"client_id": "cli02", "month_year": "2025-03", "churn_rate": 6, "nps": 5, "delinquency_rate": 12},
	} {
		rec = srv.do(t, http.MethodPost, "/v1/performance", srv.admin, p)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = srv.do(t, http.MethodPost, "/v1/performance/ranking?month=2025-03", srv.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ranking := decode[domain.PerformanceRanking](t, rec)
	require.Len(t, ranking.Ranking, 2)
	assert.Equal(t, "cli01", ranking.Ranking[0].ClientID)
	assert.Equal(t, 1, ranking.Ranking[0].Position)

	rec = srv.do(t, http.MethodGet, "/v1/performance/ranking", srv.viewer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/clients/cli02/performance/2025-03", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.BandNeedsImprovement, decode[scoring.Evaluation](t, rec).Band)

	rec = srv.do(t, http.MethodGet, "/v1/clients/cli02/ranking/2025-03", srv.viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 2, decode[domain.PerformanceRankingItem](t, rec).Position)

	rec = srv.do(t, http.MethodGet, "/v1/clients/cli99/ranking/2025-03", srv.viewer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_MeetingSummaryWithoutProvider(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/v1/meetings/summary", srv.admin, domain.SummarizeMeetingRequest{Transcript: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/meetings/summary", srv.admin, domain.SummarizeMeetingRequest{Transcript: "Cliente quer ampliar a rede"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestServer_CronJobs(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/v1/cron/run/goal-risk", srv.admin, nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = srv.do(t, http.MethodPost, "/v1/cron/run/all", srv.admin, nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, srv.job.triggered)

	rec = srv.do(t, http.MethodPost, "/v1/cron/run/desconhecido", srv.admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/v1/cron/status", srv.admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[map[string]map[string]any](t, rec)
	assert.Contains(t, status, "goal-risk")
}
