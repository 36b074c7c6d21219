package gemini

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/consultorpro-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const systemPrompt = `Você é um assistente de consultoria para provedores de internet.
Resuma a transcrição da reunião em português e responda somente com JSON no formato:
{"summary": string, "sentiment": "positive"|"neutral"|"negative",
 "opportunities": [string], "risks": [string], "next_steps": [string]}`

type MeetingSummarizer interface {
	Summarize(ctx context.Context, transcript string) (*domain.MeetingSummary, error)
}

type GeminiService struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) MeetingSummarizer {
	return &GeminiService{
		Client: client,
	}
}

type summaryResponse struct {
	Summary       string   `json:"summary"`
	Sentiment     string   `json:"sentiment"`
	Opportunities []string `json:"opportunities"`
	Risks         []string `json:"risks"`
	NextSteps     []string `json:"next_steps"`
}

func (s *GeminiService) Summarize(ctx context.Context, transcript string) (*domain.MeetingSummary, error) {
	raw, err := s.Client.GenerateJSON(ctx, systemPrompt, "Transcrição:\n"+transcript)
	if err != nil {
		return nil, err
	}

	var resp summaryResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &resp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resumo: %w", err)
	}

	return &domain.MeetingSummary{
		Summary:       strings.TrimSpace(resp.Summary),
		Sentiment:     normalizeSentiment(resp.Sentiment),
		Opportunities: nonNil(resp.Opportunities),
		Risks:         nonNil(resp.Risks),
		NextSteps:     nonNil(resp.NextSteps),
	}, nil
}

// stripCodeFence remove o bloco ```json que alguns modelos devolvem mesmo em modo JSON
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func normalizeSentiment(value string) domain.Sentiment {
	switch domain.Sentiment(strings.ToLower(strings.TrimSpace(value))) {
	case domain.SentimentPositive:
		return domain.SentimentPositive
	case domain.SentimentNegative:
		return domain.SentimentNegative
	}
	return domain.SentimentNeutral
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
