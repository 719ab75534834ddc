package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/log"
	"github.com/sandevgo/sensei/pkg/retry"
)

// NewGenerator creates the Generator selected by LLM_PROVIDER. It is
// wrapped in a Retrying only when LLM_RETRIES is positive.
func NewGenerator(ctx context.Context, cfg *config.LLMConfig) (core.Generator, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Int("retries", cfg.Retries).
		Msg("starting llm provider")

	gen, err := newProvider(cfg)
	if err != nil || cfg.Retries <= 0 {
		return gen, err
	}

	rc := retry.NewDefaultConfig()
	rc.MaxRetries = cfg.Retries
	return NewRetrying(gen, retry.NewRetrier(rc)), nil
}

func newProvider(cfg *config.LLMConfig) (core.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		return NewAnthropic(cfg.APIKey, cfg.Model), nil
	case "openrouter":
		return NewOpenRouter(cfg.APIKey, cfg.Model), nil
	case "ollama":
		return NewOllama(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case "openai-compatible":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("LLM_BASE_URL is required for provider %s", cfg.Provider)
		}
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("LLM_BASE_URL is required for provider %s", cfg.Provider)
		}
		return NewCustom(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
