package consulting

import (
	"errors"
	"fmt"
)

var (
	ErrClientIDRequired    = errors.New("client_id é obrigatório")
	ErrMonthYearRequired   = errors.New("month_year é obrigatório")
	ErrInvalidMonthYear    = errors.New("month_year inválido, use o formato yyyy-mm")
	ErrConsultancyNotFound = errors.New("consultoria não encontrada")
	ErrConsultancyExists   = errors.New("já existe consultoria para o cliente no mês")
	ErrInvalidStatus       = errors.New("status de consultoria inválido, use active ou closed")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// ConsultancyError é um erro com contexto adicional para operações de consultoria
type ConsultancyError struct {
	Err           error  // Erro base
	Code          string // Código de erro para API
	ConsultancyID string // Consultoria envolvida (quando aplicável)
	Details       string // Detalhes adicionais
}

func (e *ConsultancyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConsultancyError) Unwrap() error {
	return e.Err
}

func NewConsultancyError(err error, code string, details string) *ConsultancyError {
	return &ConsultancyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewConsultancyIDError(err error, code string, consultancyID string, details string) *ConsultancyError {
	return &ConsultancyError{
		Err:           err,
		Code:          code,
		ConsultancyID: consultancyID,
		Details:       details,
	}
}
