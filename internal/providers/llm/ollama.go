package llm

import (
	"context"

	"github.com/sandevgo/sensei/internal/core"
)

const ollamaBaseURL = "http://localhost:11434"

type Ollama struct {
	baseProvider
}

func NewOllama(baseURL, apiKey, model string) *Ollama {
	if baseURL == "" {
		baseURL = ollamaBaseURL
	}
	return &Ollama{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
	}
}

// Generate uses the non-streaming /api/generate endpoint.
func (o *Ollama) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (string, error) {
	payload := map[string]any{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"num_predict": opts.MaxTokens,
			"temperature": opts.Temperature,
		},
	}

	headers := make(map[string]string)
	if o.apiKey != "" {
		headers["Authorization"] = "Bearer " + o.apiKey
	}

	return o.generateJSON(ctx, "/api/generate", payload, headers)
}
