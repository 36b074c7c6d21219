package summarizing

import (
	"errors"
	"fmt"
)

var (
	ErrTranscriptRequired    = errors.New("transcrição é obrigatória")
	ErrTranscriptTooLong     = errors.New("transcrição excede o tamanho máximo")
	ErrProviderNotConfigured = errors.New("provedor de resumo não configurado")
	ErrProviderFailure       = errors.New("erro ao gerar resumo da reunião")
)

type SummaryError struct {
	Err     error
	Code    string
	Details string
}

func (e *SummaryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

func NewSummaryError(err error, code string, details string) *SummaryError {
	return &SummaryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
