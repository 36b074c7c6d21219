// Package summarizing resume transcrições de reunião com um provedor externo.
// Nenhuma regra de score ou priorização depende deste pacote.
package summarizing

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
)

const MaxTranscriptLength = 100000

type Summarizer interface {
	SummarizeMeeting(ctx context.Context, req *domain.SummarizeMeetingRequest) (*domain.MeetingSummary, error)
}

type Service struct {
	provider gemini.MeetingSummarizer
}

// NewService aceita provider nil; nesse caso toda chamada falha com SRV_003
func NewService(provider gemini.MeetingSummarizer) Summarizer {
	return &Service{
		provider: provider,
	}
}

func (s *Service) SummarizeMeeting(ctx context.Context, req *domain.SummarizeMeetingRequest) (*domain.MeetingSummary, error) {
	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		return nil, NewSummaryError(ErrTranscriptRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if utf8.RuneCountInString(transcript) > MaxTranscriptLength {
		return nil, NewSummaryError(ErrTranscriptTooLong, apiErrors.ErrInvalidRequest, "")
	}

	if s.provider == nil {
		return nil, NewSummaryError(ErrProviderNotConfigured, apiErrors.ErrExternalService, "GEMINI_API_KEY ausente")
	}

	logger := log.ForComponent(ctx, "summarizing").WithField("consultancy_id", req.ConsultancyID)

	summary, err := s.provider.Summarize(ctx, transcript)
	if err != nil {
		logger.WithError(err).Error("summarizing: erro ao resumir reunião")
		return nil, NewSummaryError(ErrProviderFailure, apiErrors.ErrExternalService, err.Error())
	}

	logger.WithField("sentiment", summary.Sentiment).Info("summarizing: reunião resumida")
	return summary, nil
}
