package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

// PerformanceScoringSyncConfig representa a configuração do agendador de score mensal
type PerformanceScoringSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// PerformanceScoringSyncService recalcula os scores dos meses fechados e grava o ranking de cada um
type PerformanceScoringSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceScoringSyncConfig
	scorer              scoring.Scorer
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncMonths      []string
	lastSyncErrors      int
}

func NewPerformanceScoringSyncService(scorer scoring.Scorer, appConfig *config.Config) *PerformanceScoringSyncService {
	syncConfig := PerformanceScoringSyncConfig{
		CronSchedule:  appConfig.PerformanceScoringSync.CronSchedule,
		SyncEnabled:   appConfig.PerformanceScoringSync.Enabled,
		MonthLookBack: appConfig.PerformanceScoringSync.MonthLookBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de score mensal carregada")

	return &PerformanceScoringSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		scorer:    scorer,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *PerformanceScoringSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Score mensal agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de score mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPerformanceScores(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar score mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de score mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// months lista os meses a reprocessar, do mais antigo para o mais recente,
// para que o ranking de cada mês encontre o do mês anterior já gravado
func (s *PerformanceScoringSyncService) months() []string {
	lookBack := s.config.MonthLookBack
	if lookBack < 1 {
		lookBack = 1
	}

	now := s.now()
	months := make([]string, 0, lookBack)
	for i := lookBack; i >= 1; i-- {
		months = append(months, utils.FormatMonthYear(firstDayOfMonth(now, -i)))
	}
	return months
}

func (s *PerformanceScoringSyncService) syncPerformanceScores(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Score mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	months := s.months()
	failures := 0

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncMonths = months
		s.lastSyncErrors = failures
		s.syncMutex.Unlock()
	}()

	for _, month := range months {
		logger := logrus.WithField("month_year", month)

		updated, err := s.scorer.RecalculateMonth(ctx, month)
		if err != nil {
			failures++
			logger.WithError(err).Error("Erro ao recalcular scores do mês")
			continue
		}

		ranking, err := s.scorer.BuildRanking(ctx, month)
		if err != nil {
			failures++
			logger.WithError(err).Error("Erro ao gravar ranking do mês")
			continue
		}

		logger.WithFields(logrus.Fields{
			"updated_scores": updated,
			"ranked_clients": len(ranking.Ranking),
		}).Info("Score mensal processado")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"months":   len(months),
		"errors":   failures,
	}).Info("Score mensal concluído")
}

// TriggerManualSync inicia manualmente o recálculo
func (s *PerformanceScoringSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Score mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando score mensal manual")
	go s.syncPerformanceScores(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceScoringSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_months":       s.lastSyncMonths,
		"last_sync_errors":       s.lastSyncErrors,
	}
}
