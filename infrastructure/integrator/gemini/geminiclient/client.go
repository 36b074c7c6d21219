package geminiclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/consultorpro-api/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("resposta vazia do Gemini")

type Client interface {
	GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error)
}

type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient cria o cliente do Gemini a partir da configuração
func NewClient(ctx context.Context, cfg config.Gemini) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY não configurada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

// GenerateJSON envia o prompt pedindo resposta em application/json e devolve o texto gerado
func (c *GeminiClient) GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0.2),
		},
	)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar conteúdo: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
