package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const chatTemperature = 0.7

// geminiGenerator calls the Gemini generate-content API. One request
// per message; the widget transcript is not sent.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (ReplyGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *geminiGenerator) GenerateReply(ctx context.Context, systemInstruction, message string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(message),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](chatTemperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return result.Text(), nil
}

// disabledGenerator stands in when no API key is configured. Chat
// then always answers with the busy fallback instead of failing the
// whole server at startup.
type disabledGenerator struct{}

func NewDisabledGenerator() ReplyGenerator {
	return disabledGenerator{}
}

func (disabledGenerator) GenerateReply(ctx context.Context, systemInstruction, message string) (string, error) {
	return "", fmt.Errorf("chat generation is not configured")
}
