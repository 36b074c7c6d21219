package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGeminiService_Summarize(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		validate func(t *testing.T, summary *domain.MeetingSummary, err error)
	}{
		{
			name:     "resposta JSON completa",
			response: `{"summary":" Reunião de alinhamento ","sentiment":"Positive","opportunities":["upsell de link dedicado"],"risks":["atraso na obra"],"next_steps":["enviar proposta"]}`,
			validate: func(t *testing.T, summary *domain.MeetingSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Reunião de alinhamento", summary.Summary)
				assert.Equal(t, domain.SentimentPositive, summary.Sentiment)
				assert.Equal(t, []string{"upsell de link dedicado"}, summary.Opportunities)
				assert.Equal(t, []string{"atraso na obra"}, summary.Risks)
				assert.Equal(t, []string{"enviar proposta"}, summary.NextSteps)
			},
		},
		{
			name:     "bloco de código e sentimento desconhecido",
			response: "```json\n{\"summary\":\"ok\",\"sentiment\":\"confuso\"}\n```",
			validate: func(t *testing.T, summary *domain.MeetingSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ok", summary.Summary)
				assert.Equal(t, domain.SentimentNeutral, summary.Sentiment)
				assert.Empty(t, summary.Risks)
				assert.NotNil(t, summary.NextSteps)
			},
		},
		{
			name:     "JSON inválido",
			response: "não é json",
			validate: func(t *testing.T, summary *domain.MeetingSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
		{
			name: "erro do provedor",
			err:  errors.New("quota excedida"),
			validate: func(t *testing.T, summary *domain.MeetingSummary, err error) {
				assert.EqualError(t, err, "quota excedida")
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().
				GenerateJSON(gomock.Any(), systemPrompt, "Transcrição:\nconversa com o cliente").
				Return(tt.response, tt.err)

			summary, err := New(client).Summarize(context.Background(), "conversa com o cliente")
			tt.validate(t, summary, err)
		})
	}
}
