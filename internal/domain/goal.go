package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidGoalStatus = errors.New("status de meta inválido, use cumprida, em_andamento ou nao_atingida")
	ErrInvalidGoalUnit   = errors.New("unidade de meta inválida, use number, percentage ou currency")
)

const (
	// Abaixo deste progresso (sem teto) uma meta perto do prazo é considerada em risco
	AtRiskProgressThreshold = 75.0
	AtRiskWindow            = 7 * 24 * time.Hour
)

type GoalUnit string

const (
	GoalUnitNumber     GoalUnit = "number"
	GoalUnitPercentage GoalUnit = "percentage"
	GoalUnitCurrency   GoalUnit = "currency"
)

func (u GoalUnit) Valid() bool {
	switch u {
	case GoalUnitNumber, GoalUnitPercentage, GoalUnitCurrency:
		return true
	}
	return false
}

type GoalStatus string

const (
	GoalStatusAchieved   GoalStatus = "cumprida"
	GoalStatusInProgress GoalStatus = "em_andamento"
	GoalStatusMissed     GoalStatus = "nao_atingida"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusAchieved, GoalStatusInProgress, GoalStatusMissed:
		return true
	}
	return false
}

// Goal é a meta mensal (MetaMensal) de uma consultoria
type Goal struct {
	ID            string     `json:"id"`
	ConsultancyID string     `json:"consultancy_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TargetValue   float64    `json:"target_value"`
	CurrentValue  float64    `json:"current_value"`
	Unit          GoalUnit   `json:"unit"`
	Status        GoalStatus `json:"status"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GoalProgress é a visão derivada de uma meta. O status gravado não é alterado por ela.
type GoalProgress struct {
	Goal          Goal       `json:"goal"`
	Progress      float64    `json:"progress"`
	RawProgress   float64    `json:"raw_progress"`
	ImpliedStatus GoalStatus `json:"implied_status"`
	AtRisk        bool       `json:"at_risk"`
}

// RawProgress é a razão atual/alvo em porcentagem, sem teto. Alvo <= 0 vale 0.
func RawProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}

	progress := current / target * 100
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		return 0
	}
	return progress
}

// ComputeProgress é o progresso de exibição, sempre em [0,100]
func ComputeProgress(current, target float64) float64 {
	return math.Max(0, math.Min(RawProgress(current, target), 100))
}

// ImpliedStatus deriva o status a partir da razão atual/alvo e do prazo
func ImpliedStatus(g Goal, now time.Time) GoalStatus {
	if g.TargetValue > 0 && RawProgress(g.CurrentValue, g.TargetValue) >= 100 {
		return GoalStatusAchieved
	}
	if g.Deadline != nil && g.Deadline.Before(now) {
		return GoalStatusMissed
	}
	return GoalStatusInProgress
}

// IsAtRisk sinaliza metas com progresso abaixo de 75% e prazo futuro em menos de 7 dias
func IsAtRisk(g Goal, now time.Time) bool {
	if g.Deadline == nil || !g.Deadline.After(now) {
		return false
	}
	if g.Deadline.Sub(now) >= AtRiskWindow {
		return false
	}
	return RawProgress(g.CurrentValue, g.TargetValue) < AtRiskProgressThreshold
}

// Evaluate monta a visão de progresso da meta no instante informado
func (g Goal) Evaluate(now time.Time) GoalProgress {
	return GoalProgress{
		Goal:          g,
		Progress:      ComputeProgress(g.CurrentValue, g.TargetValue),
		RawProgress:   RawProgress(g.CurrentValue, g.TargetValue),
		ImpliedStatus: ImpliedStatus(g, now),
		AtRisk:        IsAtRisk(g, now),
	}
}

type UpdateGoalRequest struct {
	ID           string      `json:"-"`
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	TargetValue  *float64    `json:"target_value"`
	CurrentValue *float64    `json:"current_value"`
	Unit         *GoalUnit   `json:"unit"`
	Status       *GoalStatus `json:"status"`
	Deadline     *time.Time  `json:"deadline"`
}
