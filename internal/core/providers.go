package core

import "context"

type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// Generator is a hosted text-completion capability.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
