package corpus

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	objects map[string]string
	listErr error
	getErr  map[string]error
}

func (m *memStore) List(ctx context.Context, prefix string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err, ok := m.getErr[key]; ok {
		return nil, err
	}
	v, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, core.ErrObjectNotFound)
	}
	return []byte(v), nil
}

func newLoader(store core.ObjectStore) *Loader {
	return NewLoader(store, Config{Prefix: "docs/", SnapshotKey: "documents.json"})
}

func TestLoader_SnapshotBeforePrefix(t *testing.T) {
	store := &memStore{objects: map[string]string{
		"documents.json":   `[{"title":"About","content":"I build cloud systems.","source":"config"}]`,
		"docs/project.json": `{"title":"Project: Chatbot","content":"A serverless chatbot."}`,
	}}

	docs := newLoader(store).Load(context.Background())

	require.Len(t, docs, 2)
	assert.Equal(t, "About", docs[0].Title)
	assert.Equal(t, core.SourceConfig, docs[0].Source)
	assert.Equal(t, "Project: Chatbot", docs[1].Title)
	assert.Equal(t, "docs/project.json", docs[1].Source, "missing source falls back to the object key")
}

func TestLoader_MissingSnapshotIsEmpty(t *testing.T) {
	store := &memStore{objects: map[string]string{
		"docs/notes.md": "Teaching AWS workshops.",
	}}

	docs := newLoader(store).Load(context.Background())

	require.Len(t, docs, 1)
	assert.Equal(t, core.Document{Title: "notes.md", Content: "Teaching AWS workshops.", Source: "docs/notes.md"}, docs[0])
}

func TestLoader_TextAndHTMLObjects(t *testing.T) {
	store := &memStore{objects: map[string]string{
		"docs/blog/post.markdown": "# Post\nHello.",
		"docs/site/index.html":    "<html><body><p>Mentoring junior engineers.</p></body></html>",
		"docs/image.png":          "\x89PNG",
		"docs/empty.txt":          "   ",
	}}

	docs := newLoader(store).Load(context.Background())

	require.Len(t, docs, 2)
	titles := []string{docs[0].Title, docs[1].Title}
	assert.ElementsMatch(t, []string{"blog/post.markdown", "site/index.html"}, titles)
	for _, d := range docs {
		if d.Title == "site/index.html" {
			assert.Contains(t, d.Content, "Mentoring junior engineers.")
			assert.NotContains(t, d.Content, "<p>")
		}
	}
}

func TestLoader_MalformedObjectSkipped(t *testing.T) {
	store := &memStore{objects: map[string]string{
		"documents.json":  `[{"title":"About"`,
		"docs/bad.json":   `{"title":`,
		"docs/good.json":  `{"title":"Skills","content":"Cloud: AWS","source":"config"}`,
		"docs/array.json": `[{"title":"","content":""},{"title":"Certification: AWS Certified AI Practitioner","content":"","source":"config"}]`,
	}}

	docs := newLoader(store).Load(context.Background())

	require.Len(t, docs, 2)
	assert.Equal(t, "Certification: AWS Certified AI Practitioner", docs[0].Title)
	assert.Equal(t, "Skills", docs[1].Title)
}

func TestLoader_UnreadableObjectSkipped(t *testing.T) {
	store := &memStore{
		objects: map[string]string{
			"docs/a.md": "alpha",
			"docs/b.md": "beta",
		},
		getErr: map[string]error{"docs/a.md": errors.New("access denied")},
	}

	docs := newLoader(store).Load(context.Background())

	require.Len(t, docs, 1)
	assert.Equal(t, "beta", docs[0].Content)
}

func TestLoader_ListingFailureDegrades(t *testing.T) {
	store := &memStore{
		objects: map[string]string{
			"documents.json": `[{"title":"About","content":"Bio.","source":"config"}]`,
		},
		listErr: errors.New("bucket unavailable"),
	}

	docs := newLoader(store).Load(context.Background())
	require.Len(t, docs, 1)

	store.objects = map[string]string{}
	assert.Empty(t, newLoader(store).Load(context.Background()))
}

func TestLoader_MaxDocuments(t *testing.T) {
	objects := map[string]string{}
	for i := 0; i < 10; i++ {
		objects[fmt.Sprintf("docs/%02d.txt", i)] = fmt.Sprintf("document %d", i)
	}
	loader := NewLoader(&memStore{objects: objects}, Config{Prefix: "docs/", MaxDocuments: 3})

	docs := loader.Load(context.Background())
	assert.Len(t, docs, 3)
}

func TestLoader_MaxObjectSize(t *testing.T) {
	store := &memStore{objects: map[string]string{
		"docs/big.txt":   strings.Repeat("a", 100),
		"docs/small.txt": "ok",
	}}
	loader := NewLoader(store, Config{Prefix: "docs/", MaxObjectSize: 10})

	docs := loader.Load(context.Background())
	require.Len(t, docs, 1)
	assert.Equal(t, "ok", docs[0].Content)
}

func TestDedupe(t *testing.T) {
	shared := strings.Repeat("x", 40)
	tests := []struct {
		name string
		in   []core.Document
		want int
	}{
		{
			name: "identical title and prefix",
			in: []core.Document{
				{Title: "About", Content: shared + " first tail", Source: "config"},
				{Title: " About ", Content: shared + " second tail", Source: "docs/about.md"},
			},
			want: 1,
		},
		{
			name: "different prefix",
			in: []core.Document{
				{Title: "About", Content: "Alpha"},
				{Title: "About", Content: "Beta"},
			},
			want: 2,
		},
		{
			name: "different title",
			in: []core.Document{
				{Title: "About", Content: "Same"},
				{Title: "Summary", Content: "Same"},
			},
			want: 2,
		},
		{
			name: "empty",
			in:   nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.in)
			assert.Len(t, got, tt.want)
			if len(tt.in) > 0 {
				assert.Equal(t, tt.in[0], got[0], "first occurrence wins")
			}
		})
	}
}
