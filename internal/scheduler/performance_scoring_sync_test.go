package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

func newScoringSyncService(scorer *mocks.MockScorer, lookBack int, now time.Time) *PerformanceScoringSyncService {
	service := NewPerformanceScoringSyncService(scorer, &config.Config{
		PerformanceScoringSync: config.PerformanceScoringSync{
			CronSchedule:  "0 5 1 * *",
			Enabled:       true,
			MonthLookBack: lookBack,
		},
	})
	service.now = func() time.Time { return now }
	return service
}

func TestPerformanceScoringSyncService_months(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lookBack int
		want     []string
	}{
		{name: "mês anterior", now: time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), lookBack: 1, want: []string{"2024-02"}},
		{name: "virada de ano", now: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), lookBack: 2, want: []string{"2023-11", "2023-12"}},
		{name: "dia 31 não pula fevereiro", now: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), lookBack: 1, want: []string{"2024-02"}},
		{name: "look back inválido usa 1", now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), lookBack: 0, want: []string{"2024-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := newScoringSyncService(mocks.NewMockScorer(ctrl), tt.lookBack, tt.now)
			assert.Equal(t, tt.want, service.months())
		})
	}
}

func TestPerformanceScoringSyncService_syncPerformanceScores(t *testing.T) {
	now := time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func(scorer *mocks.MockScorer)
		wantErrors int
	}{
		{
			name: "recalcula e grava ranking em ordem cronológica",
			setup: func(scorer *mocks.MockScorer) {
				gomock.InOrder(
					scorer.EXPECT().RecalculateMonth(gomock.Any(), "2024-01").Return(3, nil),
					scorer.EXPECT().BuildRanking(gomock.Any(), "2024-01").Return(&domain.PerformanceRanking{MonthYear: "2024-01"}, nil),
					scorer.EXPECT().RecalculateMonth(gomock.Any(), "2024-02").Return(0, nil),
					scorer.EXPECT().BuildRanking(gomock.Any(), "2024-02").Return(&domain.PerformanceRanking{MonthYear: "2024-02"}, nil),
				)
			},
		},
		{
			name: "erro em um mês não interrompe os demais",
			setup: func(scorer *mocks.MockScorer) {
				scorer.EXPECT().RecalculateMonth(gomock.Any(), "2024-01").Return(0, errors.New("timeout"))
				scorer.EXPECT().RecalculateMonth(gomock.Any(), "2024-02").Return(1, nil)
				scorer.EXPECT().BuildRanking(gomock.Any(), "2024-02").Return(nil, errors.New("disco cheio"))
			},
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scorer := mocks.NewMockScorer(ctrl)
			tt.setup(scorer)

			service := newScoringSyncService(scorer, 2, now)
			service.syncPerformanceScores(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantErrors, status["last_sync_errors"])
			assert.Equal(t, []string{"2024-01", "2024-02"}, status["last_sync_months"])
			assert.Equal(t, now, status["last_sync_completed_at"])
		})
	}
}

func TestPerformanceScoringSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newScoringSyncService(mocks.NewMockScorer(ctrl), 1, time.Now())

	// Nenhuma chamada ao scorer é esperada
	service.syncRunning = true
	service.syncPerformanceScores(context.Background())
	service.TriggerManualSync()

	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestPerformanceScoringSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newScoringSyncService(mocks.NewMockScorer(ctrl), 1, time.Now())
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
