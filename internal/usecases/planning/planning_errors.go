package planning

import (
	"errors"
	"fmt"
)

var (
	ErrConsultancyIDRequired       = errors.New("consultancy_id é obrigatório")
	ErrTitleRequired               = errors.New("título é obrigatório")
	ErrActionNotFound              = errors.New("ação não encontrada")
	ErrOpportunityNotFound         = errors.New("oportunidade não encontrada")
	ErrOpportunityAlreadyConverted = errors.New("oportunidade já convertida em ação")
	ErrInvalidEstimatedValue       = errors.New("valor estimado não pode ser negativo")
	ErrDatabaseOperation           = errors.New("erro ao realizar operação no banco de dados")
)

// PlanningError é um erro com contexto adicional para ações e oportunidades
type PlanningError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID string // Ação ou oportunidade envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *PlanningError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}

func NewPlanningError(err error, code string, details string) *PlanningError {
	return &PlanningError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewResourcePlanningError(err error, code string, resourceID string, details string) *PlanningError {
	return &PlanningError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
