package tracking

import (
	"errors"
	"fmt"
)

var (
	ErrConsultancyIDRequired = errors.New("consultancy_id é obrigatório")
	ErrTitleRequired         = errors.New("título é obrigatório")
	ErrInvalidTarget         = errors.New("valor alvo não pode ser negativo")
	ErrGoalNotFound          = errors.New("meta não encontrada")
	ErrInvalidMonthYear      = errors.New("período inválido, use o formato yyyy-mm")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// TrackingError é um erro com contexto adicional para metas
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	GoalID  string // Meta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewGoalTrackingError(err error, code string, goalID string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		GoalID:  goalID,
		Details: details,
	}
}
