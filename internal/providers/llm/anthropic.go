package llm

import (
	"context"

	"github.com/sandevgo/sensei/internal/core"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

type Anthropic struct {
	baseProvider
}

func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider(anthropicBaseURL, apiKey, model),
	}
}

func (a *Anthropic) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (string, error) {
	payload := map[string]any{
		"model":       a.model,
		"max_tokens":  opts.MaxTokens,
		"temperature": opts.Temperature,
		"messages":    []chatMessage{{Role: "user", Content: prompt}},
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	return a.generateJSON(ctx, "/v1/messages", payload, headers)
}
