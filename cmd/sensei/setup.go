package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/metrics"
	"github.com/sandevgo/sensei/internal/providers/llm"
	"github.com/sandevgo/sensei/internal/service/chat"
	"github.com/sandevgo/sensei/internal/service/corpus"
	"github.com/sandevgo/sensei/internal/service/prompt"
	"github.com/sandevgo/sensei/internal/service/retrieval"
	"github.com/sandevgo/sensei/internal/service/router"
	"github.com/sandevgo/sensei/internal/service/sanitize"
	"github.com/sandevgo/sensei/internal/storage/fsstore"
	"github.com/sandevgo/sensei/internal/storage/sqlite"
	"github.com/sandevgo/sensei/pkg/log"
)

// appRuntime is everything a command needs once configuration is resolved.
type appRuntime struct {
	app     *config.AppConfig
	llm     *config.LLMConfig
	store   core.WritableStore
	chat    *chat.Service
	metrics *metrics.Metrics
	close   func() error
}

func newRuntime(ctx context.Context) (*appRuntime, error) {
	logger := log.FromCtx(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	site, err := config.LoadSiteConfig(appCfg.GetSiteConfigPath())
	if err != nil {
		return nil, err
	}

	// 2. Storage
	store, closeStore, err := openStore(ctx, appCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	// 3. Generation
	generator, err := llm.NewGenerator(ctx, llmCfg)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("failed to initialize llm provider: %w", err)
	}

	var m *metrics.Metrics
	if appCfg.EnableMetrics {
		m = metrics.New()
	}

	// 4. Pipeline
	loader := corpus.NewLoader(store, corpus.Config{
		Prefix:       appCfg.Prefix,
		SnapshotKey:  appCfg.SnapshotKey,
		MaxDocuments: appCfg.MaxDocuments,
	})
	svc := chat.NewService(chat.Deps{
		Loader:    loader,
		Router:    router.New(*site, retrieval.NewDefaultScorer()),
		Prompts:   prompt.NewBuilder(llmCfg.PromptMaxTokens),
		Generator: generator,
		Sanitizer: sanitize.New(sanitize.DefaultMaxSentences),
		Site:      *site,
		Options: core.GenerateOptions{
			MaxTokens:   llmCfg.MaxTokens,
			Temperature: llmCfg.Temperature,
		},
		Metrics: m,
	})

	logger.Debug().
		Str("store", appCfg.StoreDriver).
		Str("owner", site.OwnerName).
		Strs("rag_topics", site.Features.RAGTriggerTopics).
		Msg("runtime ready")

	return &appRuntime{
		app:     appCfg,
		llm:     llmCfg,
		store:   store,
		chat:    svc,
		metrics: m,
		close:   closeStore,
	}, nil
}

func openStore(ctx context.Context, cfg *config.AppConfig) (core.WritableStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverFS, "":
		return fsstore.New(cfg.GetBucketPath()), func() error { return nil }, nil
	case config.StoreDriverSQLite:
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewObjectRepo(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// initEnv loads <runtime>/.env when it exists. It returns the path it loaded.
func initEnv(runtimePath string) (string, error) {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return envFile, err
	}

	if err := godotenv.Load(envFile); err != nil {
		return envFile, err
	}
	return envFile, nil
}
