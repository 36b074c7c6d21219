package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrClientIDRequired    = errors.New("client_id é obrigatório")
	ErrInvalidMonthYear    = errors.New("período inválido, use o formato yyyy-mm")
	ErrInvalidIndicator    = errors.New("indicador fora da faixa permitida")
	ErrPerformanceNotFound = errors.New("performance não encontrada")
	ErrRankingNotFound     = errors.New("cliente fora do ranking do período")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// ScoringError é um erro com contexto adicional para performance e ranking
type ScoringError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ClientID string // Cliente envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *ScoringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

func NewScoringError(err error, code string, details string) *ScoringError {
	return &ScoringError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewClientScoringError cria um ScoringError com o cliente envolvido
func NewClientScoringError(err error, code string, clientID string, details string) *ScoringError {
	return &ScoringError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}
