package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimelineEventType string

const (
	TimelineGoal        TimelineEventType = "goal"
	TimelineAction      TimelineEventType = "action"
	TimelineDiagnostic  TimelineEventType = "diagnostic"
	TimelineOpportunity TimelineEventType = "opportunity"
)

// TimelineEvent é uma entrada da linha do tempo da consultoria
type TimelineEvent struct {
	Type        TimelineEventType `json:"type"`
	ReferenceID string            `json:"reference_id"`
	Title       string            `json:"title"`
	Detail      string            `json:"detail,omitempty"`
	Date        time.Time         `json:"date"`
}

type GoalOverview struct {
	Total              int                `json:"total"`
	ByStatus           map[GoalStatus]int `json:"by_status"`
	AchievedPercentage float64            `json:"achieved_percentage"`
	AverageProgress    float64            `json:"average_progress"`
	AtRisk             []GoalProgress     `json:"at_risk"`
}

type ActionOverview struct {
	Total                int                  `json:"total"`
	ByQuadrant           map[Quadrant]int     `json:"by_quadrant"`
	ByStatus             map[ActionStatus]int `json:"by_status"`
	CompletionPercentage float64              `json:"completion_percentage"`
}

type OpportunityOverview struct {
	Total          int             `json:"total"`
	Converted      int             `json:"converted"`
	ConversionRate float64         `json:"conversion_rate"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	ConvertedValue decimal.Decimal `json:"converted_value"`
}

type PerformanceOverview struct {
	Score      int                   `json:"score"`
	Band       Band                  `json:"band"`
	Color      string                `json:"color"`
	Indicators PerformanceIndicators `json:"indicators"`
	ARPU       decimal.Decimal       `json:"arpu"`
}

// Dashboard é o painel de uma consultoria mensal. Sem registros, todos os contadores ficam zerados.
type Dashboard struct {
	ConsultancyID string               `json:"consultancy_id"`
	Consultancy   *Consultancy         `json:"consultancy,omitempty"`
	Goals         GoalOverview         `json:"goals"`
	Actions       ActionOverview       `json:"actions"`
	Opportunities OpportunityOverview  `json:"opportunities"`
	Performance   *PerformanceOverview `json:"performance,omitempty"`
	Diagnostic    *DiagnosticSummary   `json:"diagnostic,omitempty"`
	Timeline      []TimelineEvent      `json:"timeline"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

// DiagnosticTotals soma os itens dos diagnósticos de um período
type DiagnosticTotals struct {
	Diagnostics   int `json:"diagnostics"`
	Strengths     int `json:"strengths"`
	Weaknesses    int `json:"weaknesses"`
	Opportunities int `json:"opportunities"`
	Threats       int `json:"threats"`
	Problems      int `json:"problems"`
	Insights      int `json:"insights"`
	LinkedActions int `json:"linked_actions"`
}

type MonthPerformance struct {
	Clients      int             `json:"clients"`
	AverageScore float64         `json:"average_score"`
	ByBand       map[Band]int    `json:"by_band"`
	TotalBilling decimal.Decimal `json:"total_billing"`
}

// MonthOverview consolida todas as consultorias cuja chave contém o período
type MonthOverview struct {
	MonthYear     string              `json:"month_year"`
	Consultancies int                 `json:"consultancies"`
	Goals         GoalOverview        `json:"goals"`
	Actions       ActionOverview      `json:"actions"`
	Opportunities OpportunityOverview `json:"opportunities"`
	Diagnostics   DiagnosticTotals    `json:"diagnostics"`
	Performance   MonthPerformance    `json:"performance"`
	GeneratedAt   time.Time           `json:"generated_at"`
}
