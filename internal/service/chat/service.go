// Package chat runs one visitor message through the whole pipeline:
// load documents, route, and when needed generate and sanitize.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/metrics"
	"github.com/sandevgo/sensei/internal/service/lang"
	"github.com/sandevgo/sensei/internal/service/prompt"
	"github.com/sandevgo/sensei/internal/service/router"
	"github.com/sandevgo/sensei/internal/service/sanitize"
	"github.com/sandevgo/sensei/pkg/log"
)

var ErrEmptyMessage = errors.New("message is required")

// DocumentLoader yields the corpus for a single request.
type DocumentLoader interface {
	Load(ctx context.Context) []core.Document
}

type Deps struct {
	Loader    DocumentLoader
	Router    *router.Router
	Prompts   *prompt.Builder
	Generator core.Generator
	Sanitizer *sanitize.Sanitizer
	Site      core.SiteConfig
	Options   core.GenerateOptions
	Metrics   *metrics.Metrics
}

// Service holds no per-request state, so one instance serves all transports.
type Service struct {
	loader    DocumentLoader
	router    *router.Router
	prompts   *prompt.Builder
	generator core.Generator
	sanitizer *sanitize.Sanitizer
	site      core.SiteConfig
	opts      core.GenerateOptions
	metrics   *metrics.Metrics
}

func NewService(d Deps) *Service {
	s := &Service{
		loader:    d.Loader,
		router:    d.Router,
		prompts:   d.Prompts,
		generator: d.Generator,
		sanitizer: d.Sanitizer,
		site:      d.Site,
		opts:      d.Options,
		metrics:   d.Metrics,
	}
	if s.router == nil {
		s.router = router.New(d.Site, nil)
	}
	if s.prompts == nil {
		s.prompts = prompt.NewBuilder(prompt.DefaultMaxTokens)
	}
	if s.sanitizer == nil {
		s.sanitizer = sanitize.New(sanitize.DefaultMaxSentences)
	}
	return s
}

func (s *Service) Reply(ctx context.Context, req core.ChatRequest) (core.ChatResponse, error) {
	start := time.Now()
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return core.ChatResponse{}, ErrEmptyMessage
	}

	meta := router.Meta{
		Name:     strings.TrimSpace(req.Name),
		Language: detectLanguage(req.Language, msg),
	}
	logger := log.FromCtx(ctx)

	docs := s.loader.Load(ctx)
	s.metrics.Documents(len(docs))

	decision := s.router.Route(msg, docs, meta)
	intent := decision.Intent.String()
	s.metrics.Intent(intent)
	defer func() { s.metrics.Observe(intent, time.Since(start)) }()

	logger.Debug().
		Str("intent", intent).
		Str("language", string(meta.Language)).
		Int("documents", len(docs)).
		Strs("sources", decision.Retrieval.Sources).
		Msg("message routed")

	if !decision.Generate {
		s.metrics.Generation(metrics.GenerationNoCall)
		return core.ChatResponse{Message: decision.Answer}, nil
	}

	raw, err := s.generate(ctx, decision, msg, meta)
	if err != nil {
		return core.ChatResponse{}, err
	}
	return core.ChatResponse{Message: s.sanitizer.Sanitize(raw, msg, meta.Name, meta.Language)}, nil
}

// Ask is Reply for transports that carry plain strings.
func (s *Service) Ask(ctx context.Context, message, name string) (string, error) {
	resp, err := s.Reply(ctx, core.ChatRequest{Message: message, Name: name})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// generate maps provider failures to the fixed apology; only a cancelled
// request is returned as an error.
func (s *Service) generate(ctx context.Context, d router.Decision, msg string, meta router.Meta) (string, error) {
	logger := log.FromCtx(ctx)

	p := s.prompts.Build(prompt.Params{
		Template:  d.Template,
		Context:   d.Retrieval.Context,
		Question:  msg,
		Name:      meta.Name,
		Language:  meta.Language,
		AgentName: core.AgentName,
		OwnerName: s.site.OwnerName,
	})

	if s.generator == nil {
		logger.Error().Msg("no generator configured")
		s.metrics.Generation(metrics.GenerationError)
		return lang.GenerationFailed, nil
	}

	raw, err := s.generator.Generate(ctx, p, s.opts)
	switch {
	case ctx.Err() != nil:
		return "", fmt.Errorf("generate: %w", ctx.Err())
	case err != nil:
		logger.Error().Err(err).Str("template", d.Template.String()).Msg("generation failed")
		s.metrics.Generation(metrics.GenerationError)
		return lang.GenerationFailed, nil
	case strings.TrimSpace(raw) == "":
		logger.Warn().Str("template", d.Template.String()).Msg("generation returned no text")
		s.metrics.Generation(metrics.GenerationEmpty)
		return lang.GenerationFailed, nil
	}

	s.metrics.Generation(metrics.GenerationOK)
	return raw, nil
}

func detectLanguage(tag, msg string) lang.Language {
	if l, ok := lang.Parse(tag); ok {
		return l
	}
	return lang.Detect(msg)
}
