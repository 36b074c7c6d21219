package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
	"github.com/vfg2006/consultorpro-api/pkg/utils"
)

// GoalRiskWatchService varre diariamente as metas do mês corrente e registra as que estão em risco
type GoalRiskWatchService struct {
	scheduler          *gocron.Scheduler
	cronSchedule       string
	enabled            bool
	tracker            tracking.GoalTracker
	now                func() time.Time
	watchRunning       bool
	watchMutex         sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastAtRiskCount    int
	lastRunError       string
}

func NewGoalRiskWatchService(tracker tracking.GoalTracker, appConfig *config.Config) *GoalRiskWatchService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.GoalRiskWatch.CronSchedule,
		"watch_enabled": appConfig.GoalRiskWatch.Enabled,
	}).Info("Configuração do monitor de metas em risco carregada")

	return &GoalRiskWatchService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.GoalRiskWatch.CronSchedule,
		enabled:      appConfig.GoalRiskWatch.Enabled,
		tracker:      tracker,
		now:          time.Now,
	}
}

func (s *GoalRiskWatchService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Monitor de metas em risco desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.watchGoals(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de metas em risco: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de metas em risco")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *GoalRiskWatchService) watchGoals(ctx context.Context) {
	s.watchMutex.Lock()
	if s.watchRunning {
		s.watchMutex.Unlock()
		logrus.Info("Monitor de metas em risco já em andamento, ignorando")
		return
	}
	s.watchRunning = true
	s.lastRunStartedAt = s.now()
	s.watchMutex.Unlock()

	month := utils.FormatMonthYear(s.now())
	atRisk := 0
	runError := ""

	defer func() {
		s.watchMutex.Lock()
		s.watchRunning = false
		s.lastRunCompletedAt = s.now()
		s.lastAtRiskCount = atRisk
		s.lastRunError = runError
		s.watchMutex.Unlock()
	}()

	goals, err := s.tracker.ListAtRisk(ctx, month)
	if err != nil {
		runError = err.Error()
		logrus.WithError(err).WithField("month_year", month).Error("Erro ao listar metas em risco")
		return
	}

	atRisk = len(goals)
	for _, goal := range goals {
		fields := logrus.Fields{
			"consultancy_id": goal.Goal.ConsultancyID,
			"goal_id":        goal.Goal.ID,
			"title":          goal.Goal.Title,
			"raw_progress":   utils.RoundWithTwoDecimalPlace(goal.RawProgress),
		}
		if goal.Goal.Deadline != nil {
			fields["deadline"] = goal.Goal.Deadline.Format(time.DateOnly)
		}
		logrus.WithFields(fields).Warn("Meta em risco")
	}

	logrus.WithFields(logrus.Fields{
		"month_year": month,
		"at_risk":    atRisk,
	}).Info("Monitor de metas em risco concluído")
}

func (s *GoalRiskWatchService) TriggerManualSync() {
	s.watchMutex.Lock()
	if s.watchRunning {
		s.watchMutex.Unlock()
		logrus.Info("Monitor de metas em risco já em andamento, ignorando solicitação manual")
		return
	}
	s.watchMutex.Unlock()

	go s.watchGoals(context.Background())
}

func (s *GoalRiskWatchService) GetStatus() map[string]any {
	s.watchMutex.Lock()
	defer s.watchMutex.Unlock()

	return map[string]any{
		"sync_running":           s.watchRunning,
		"sync_cron":              s.cronSchedule,
		"sync_enabled":           s.enabled,
		"last_sync_started_at":   s.lastRunStartedAt,
		"last_sync_completed_at": s.lastRunCompletedAt,
		"last_at_risk_count":     s.lastAtRiskCount,
		"last_error":             s.lastRunError,
	}
}
