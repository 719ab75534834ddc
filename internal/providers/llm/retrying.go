package llm

import (
	"context"
	"errors"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/log"
	"github.com/sandevgo/sensei/pkg/retry"
)

// Retrying repeats Generate on rate limits, server errors and transport failures.
type Retrying struct {
	next    core.Generator
	retrier *retry.Retrier
}

func NewRetrying(next core.Generator, retrier *retry.Retrier) *Retrying {
	return &Retrying{next: next, retrier: retrier}
}

func (r *Retrying) Generate(ctx context.Context, prompt string, opts core.GenerateOptions) (string, error) {
	var text string
	attempt := 0
	err := r.retrier.Do(ctx, func() error {
		attempt++
		var err error
		text, err = r.next.Generate(ctx, prompt, opts)
		if err == nil {
			return nil
		}
		if !retryable(ctx, err) {
			return retry.Permanent(err)
		}
		log.FromCtx(ctx).Warn().Err(err).Int("attempt", attempt).Msg("generation failed, retrying")
		return err
	})
	return text, err
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, ErrNoText) {
		return false
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.Temporary()
	}
	return true
}
