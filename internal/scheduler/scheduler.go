package scheduler

import (
	"context"
	"time"
)

// Nomes usados na rota POST /v1/cron/run/:type
const (
	PerformanceScoringJob = "performance-scoring"
	GoalRiskJob           = "goal-risk"
)

// Job é a superfície comum dos agendadores exposta pela API
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

// firstDayOfMonth evita o estouro de AddDate em dias 29-31
func firstDayOfMonth(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}
