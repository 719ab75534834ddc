package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/sensei/pkg/log"
)

type LLMConfig struct {
	Provider    string  `env:"LLM_PROVIDER" envDefault:"ollama"`
	Model       string  `env:"LLM_MODEL" envDefault:"llama3.2"`
	BaseURL     string  `env:"LLM_BASE_URL"`
	APIKey      string  `env:"LLM_API_KEY"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"256"`
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.3"`
	Retries     int     `env:"LLM_RETRIES" envDefault:"0"`

	PromptMaxTokens int `env:"PROMPT_MAX_TOKENS" envDefault:"1800"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
