package domain

import (
	"errors"
	"time"
)

var ErrInvalidActionStatus = errors.New("status de ação inválido, use pending, in_progress ou done")

type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusDone       ActionStatus = "done"
)

func (s ActionStatus) Valid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusDone:
		return true
	}
	return false
}

// Action é uma ação de consultoria (AcaoConsultoria). Quadrant é sempre derivado de Impact e Effort.
type Action struct {
	ID            string       `json:"id"`
	ConsultancyID string       `json:"consultancy_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Impact        Level        `json:"impact"`
	Effort        Level        `json:"effort"`
	Quadrant      Quadrant     `json:"quadrant"`
	Status        ActionStatus `json:"status"`
	Owner         string       `json:"owner,omitempty"`
	Deadline      *time.Time   `json:"deadline,omitempty"`
	DiagnosticID  *string      `json:"diagnostic_id,omitempty"`
	GoalID        *string      `json:"goal_id,omitempty"`
	OpportunityID *string      `json:"opportunity_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SetImpactEffort altera o par e recalcula o quadrante na mesma operação
func (a *Action) SetImpactEffort(impact, effort Level) error {
	if !impact.Valid() || !effort.Valid() {
		return ErrInvalidLevel
	}

	a.Impact = impact
	a.Effort = effort
	a.Quadrant = ClassifyQuadrant(impact, effort)
	return nil
}

// MoveTo reclassifica a ação aplicando o par canônico do quadrante de destino
func (a *Action) MoveTo(q Quadrant) error {
	impact, effort, err := CanonicalPair(q)
	if err != nil {
		return err
	}
	return a.SetImpactEffort(impact, effort)
}

// UpdateActionRequest carrega os campos opcionais de uma edição de ação
type UpdateActionRequest struct {
	ID           string        `json:"-"`
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Impact       *Level        `json:"impact"`
	Effort       *Level        `json:"effort"`
	Status       *ActionStatus `json:"status"`
	Owner        *string       `json:"owner"`
	Deadline     *time.Time    `json:"deadline"`
	DiagnosticID *string       `json:"diagnostic_id"`
	GoalID       *string       `json:"goal_id"`
}

// ActionMatrix agrupa as ações nos quatro quadrantes
type ActionMatrix struct {
	ConsultancyID string                `json:"consultancy_id"`
	Quadrants     map[Quadrant][]Action `json:"quadrants"`
	Total         int                   `json:"total"`
}
