package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/sensei/pkg/log"
)

const (
	StoreDriverFS     = "fs"
	StoreDriverSQLite = "sqlite"
)

type AppConfig struct {
	RuntimePath string `env:"SENSEI_RUNTIME_PATH" envDefault:".sensei"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	CORSOrigin  string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	Region      string `env:"SENSEI_REGION" envDefault:"local"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Document store
	StoreDriver  string `env:"STORE_DRIVER" envDefault:"fs"`
	Bucket       string `env:"DOCS_BUCKET" envDefault:"content"`
	Prefix       string `env:"DOCS_PREFIX" envDefault:"docs/"`
	SnapshotKey  string `env:"DOCS_SNAPSHOT_KEY" envDefault:"documents.json"`
	MaxDocuments int    `env:"DOCS_MAX" envDefault:"500"`

	SiteConfigPath string `env:"SITE_CONFIG_PATH"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableMetrics  bool `env:"ENABLE_METRICS" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// GetBucketPath resolves the fs bucket relative to the runtime path.
func (c AppConfig) GetBucketPath() string {
	if filepath.IsAbs(c.Bucket) {
		return c.Bucket
	}
	return filepath.Join(c.RuntimePath, c.Bucket)
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "sensei.db")
}

func (c AppConfig) GetSiteConfigPath() string {
	if c.SiteConfigPath != "" {
		return c.SiteConfigPath
	}
	return filepath.Join(c.RuntimePath, "site.yaml")
}
