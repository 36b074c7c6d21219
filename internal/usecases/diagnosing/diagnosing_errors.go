package diagnosing

import (
	"errors"
	"fmt"
)

var (
	ErrConsultancyIDRequired = errors.New("consultancy_id é obrigatório")
	ErrDiagnosticNotFound    = errors.New("diagnóstico não encontrado")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// DiagnosticError é um erro com contexto adicional para operações de diagnóstico
type DiagnosticError struct {
	Err           error
	Code          string
	ConsultancyID string
	Details       string
}

func (e *DiagnosticError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

func NewDiagnosticError(err error, code string, consultancyID string, details string) *DiagnosticError {
	return &DiagnosticError{
		Err:           err,
		Code:          code,
		ConsultancyID: consultancyID,
		Details:       details,
	}
}
