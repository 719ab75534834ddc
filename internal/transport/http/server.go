// Package http exposes the chat pipeline as a small JSON API.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/log"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 120 * time.Second
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 64 << 10
)

// Replier answers a single chat request.
type Replier interface {
	Reply(ctx context.Context, req core.ChatRequest) (core.ChatResponse, error)
}

type Config struct {
	Addr    string
	Region  string
	ModelID string
	Bucket  string
	Prefix  string
	// AllowOrigin is sent as Access-Control-Allow-Origin, "*" when empty.
	AllowOrigin string
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
}

type Server struct {
	cfg     Config
	chat    Replier
	now     func() time.Time
	server  *http.Server
	handler http.Handler
}

func NewServer(cfg Config, chat Replier) *Server {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}
	s := &Server{cfg: cfg, chat: chat, now: time.Now}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	s.handler = corsMiddleware(cfg.AllowOrigin, recoverMiddleware(mux))
	return s
}

// Handler is the full middleware chain without request logging.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	s.server = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      loggingMiddleware(s.handler),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	logger.Info().Str("addr", s.cfg.Addr).Msg("starting http server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
