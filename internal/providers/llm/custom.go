package llm

import (
	"context"

	"github.com/sandevgo/sensei/internal/core"
)

// Custom posts {prompt, max_tokens, temperature, model} to an arbitrary
// completion endpoint and reads whichever known field holds the text.
type Custom struct {
	baseProvider
}

// NewCustom takes the full endpoint URL as baseURL.
func NewCustom(baseURL, apiKey, model string) *Custom {
	return &Custom{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
	}
}

func (c *Custom) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (string, error) {
	payload := map[string]any{
		"prompt":      prompt,
		"max_tokens":  opts.MaxTokens,
		"temperature": opts.Temperature,
	}
	if c.model != "" {
		payload["model"] = c.model
	}

	headers := make(map[string]string)
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	return c.generateJSON(ctx, "", payload, headers)
}
