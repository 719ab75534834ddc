package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"gopkg.in/yaml.v3"
)

const DefaultContactURL = "https://example.com/contact"

func DefaultSiteConfig() *core.SiteConfig {
	return &core.SiteConfig{
		OwnerName:  "",
		ContactURL: DefaultContactURL,
		Features: core.FeatureFlags{
			RAGTriggerTopics: []string{"experience", "leadership", "crypto"},
		},
	}
}

// LoadSiteConfig reads the site configuration from YAML or JSON.
// A missing file is not an error: defaults are returned.
func LoadSiteConfig(path string) (*core.SiteConfig, error) {
	cfg := DefaultSiteConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse site config %s: %w", path, err)
	}

	if cfg.ContactURL == "" {
		cfg.ContactURL = DefaultContactURL
	}
	cfg.Features.RAGTriggerTopics = normalizeTopics(cfg.Features.RAGTriggerTopics)

	return cfg, nil
}

func normalizeTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
