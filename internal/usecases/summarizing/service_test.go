package summarizing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_SummarizeMeeting(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		setup      func(provider *mocks.MockMeetingSummarizer)
		wantErr    error
		wantCode   string
	}{
		{
			name:       "resumo gerado",
			transcript: "  Cliente elogiou o suporte e pediu proposta de fibra.  ",
			setup: func(provider *mocks.MockMeetingSummarizer) {
				provider.EXPECT().
					Summarize(gomock.Any(), "Cliente elogiou o suporte e pediu proposta de fibra.").
					Return(&domain.MeetingSummary{
						Summary:       "Cliente satisfeito",
						Sentiment:     domain.SentimentPositive,
						Opportunities: []string{"Proposta de fibra"},
						Risks:         []string{},
						NextSteps:     []string{"Enviar proposta"},
					}, nil)
			},
		},
		{
			name:       "transcrição vazia",
			transcript: "   ",
			wantErr:    ErrTranscriptRequired,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "transcrição longa demais",
			transcript: strings.Repeat("a", MaxTranscriptLength+1),
			wantErr:    ErrTranscriptTooLong,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "falha do provedor",
			transcript: "reunião",
			setup: func(provider *mocks.MockMeetingSummarizer) {
				provider.EXPECT().Summarize(gomock.Any(), "reunião").Return(nil, errors.New("quota excedida"))
			},
			wantErr:  ErrProviderFailure,
			wantCode: apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mocks.NewMockMeetingSummarizer(ctrl)
			if tt.setup != nil {
				tt.setup(provider)
			}

			summary, err := NewService(provider).SummarizeMeeting(context.Background(), &domain.SummarizeMeetingRequest{
				ConsultancyID: "client42-2024-01",
				Transcript:    tt.transcript,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				var summaryErr *SummaryError
				require.True(t, errors.As(err, &summaryErr))
				assert.Equal(t, tt.wantCode, summaryErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.SentimentPositive, summary.Sentiment)
			assert.Equal(t, []string{"Enviar proposta"}, summary.NextSteps)
		})
	}
}

func TestService_SummarizeMeeting_ProviderNotConfigured(t *testing.T) {
	_, err := NewService(nil).SummarizeMeeting(context.Background(), &domain.SummarizeMeetingRequest{Transcript: "reunião"})
	assert.ErrorIs(t, err, ErrProviderNotConfigured)

	var summaryErr *SummaryError
	require.True(t, errors.As(err, &summaryErr))
	assert.Equal(t, apiErrors.ErrExternalService, summaryErr.Code)
}
