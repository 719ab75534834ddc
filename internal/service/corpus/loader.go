// Package corpus loads the per-request document set from an object store.
package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/conv"
	"github.com/sandevgo/sensei/pkg/log"
)

const (
	defaultMaxDocuments  = 500
	defaultMaxObjectSize = 256 << 10
	dedupePrefixLen      = 40
)

type Config struct {
	Prefix        string
	SnapshotKey   string
	MaxDocuments  int
	MaxObjectSize int
}

type Loader struct {
	store core.ObjectStore
	cfg   Config
}

func NewLoader(store core.ObjectStore, cfg Config) *Loader {
	if cfg.MaxDocuments <= 0 {
		cfg.MaxDocuments = defaultMaxDocuments
	}
	if cfg.MaxObjectSize <= 0 {
		cfg.MaxObjectSize = defaultMaxObjectSize
	}
	return &Loader{store: store, cfg: cfg}
}

// Load never fails: unreadable objects are skipped and a listing failure
// yields whatever the snapshot provided, down to an empty corpus.
func (l *Loader) Load(ctx context.Context) []core.Document {
	logger := log.FromCtx(ctx)
	var docs []core.Document

	if l.cfg.SnapshotKey != "" {
		docs = append(docs, l.loadObject(ctx, l.cfg.SnapshotKey)...)
	}

	keys, err := l.store.List(ctx, l.cfg.Prefix)
	if err != nil {
		logger.Warn().Err(err).Str("prefix", l.cfg.Prefix).Msg("failed to list documents")
		keys = nil
	}

	for _, key := range keys {
		if key == l.cfg.SnapshotKey || strings.HasSuffix(key, "/") {
			continue
		}
		docs = append(docs, l.loadObject(ctx, key)...)
	}

	docs = Dedupe(docs)
	if len(docs) > l.cfg.MaxDocuments {
		logger.Warn().Int("count", len(docs)).Int("max", l.cfg.MaxDocuments).Msg("corpus truncated")
		docs = docs[:l.cfg.MaxDocuments]
	}

	logger.Debug().Int("documents", len(docs)).Int("objects", len(keys)).Msg("corpus loaded")
	return docs
}

func (l *Loader) loadObject(ctx context.Context, key string) []core.Document {
	logger := log.FromCtx(ctx)

	body, err := l.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, core.ErrObjectNotFound) {
			logger.Debug().Str("key", key).Msg("object not found")
		} else {
			logger.Warn().Err(err).Str("key", key).Msg("failed to read object")
		}
		return nil
	}
	if len(body) > l.cfg.MaxObjectSize {
		logger.Warn().Str("key", key).Int("size", len(body)).Msg("object too large, skipped")
		return nil
	}

	docs, err := parseObject(key, l.relativeTitle(key), body)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to parse object, skipped")
		return nil
	}
	return docs
}

func (l *Loader) relativeTitle(key string) string {
	rel := strings.TrimPrefix(key, l.cfg.Prefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return key
	}
	return rel
}

func parseObject(key, title string, body []byte) ([]core.Document, error) {
	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		return parseJSON(key, body)
	case ".txt", ".md", ".markdown":
		return wrapText(key, title, string(body)), nil
	case ".html", ".htm":
		text, err := conv.HTMLToText(body)
		if err != nil {
			return nil, err
		}
		return wrapText(key, title, text), nil
	default:
		return nil, nil
	}
}

func wrapText(key, title, text string) []core.Document {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []core.Document{{Title: title, Content: text, Source: key}}
}

// parseJSON accepts either a single document object or an array of them.
func parseJSON(key string, body []byte) ([]core.Document, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	var raw []core.Document
	if body[0] == '[' {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("malformed document array: %w", err)
		}
	} else {
		var one core.Document
		if err := json.Unmarshal(body, &one); err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}
		raw = []core.Document{one}
	}

	docs := make([]core.Document, 0, len(raw))
	for _, d := range raw {
		if d.IsEmpty() {
			continue
		}
		if d.Source == "" {
			d.Source = key
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Dedupe keeps the first document for each trimmed title and content prefix.
func Dedupe(docs []core.Document) []core.Document {
	seen := make(map[string]struct{}, len(docs))
	out := make([]core.Document, 0, len(docs))
	for _, d := range docs {
		k := dedupeKey(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	return out
}

func dedupeKey(d core.Document) string {
	return strings.TrimSpace(d.Title) + "::" + prefixRunes(d.Content, dedupePrefixLen)
}

func prefixRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
