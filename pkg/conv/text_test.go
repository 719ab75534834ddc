package conv

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Hello world.", []string{"Hello world."}},
		{"mixed enders", "Hello world. How are you? Great!", []string{"Hello world.", "How are you?", "Great!"}},
		{"no trailing punctuation", "One. Two", []string{"One.", "Two"}},
		{"dots inside tokens", "See v1.2 of node.js today. Done.", []string{"See v1.2 of node.js today.", "Done."}},
		{"newline boundary", "First.\nSecond.", []string{"First.", "Second."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}

func TestFirstSentences(t *testing.T) {
	assert.Equal(t, "A. B.", FirstSentences("A. B. C.", 2))
	assert.Equal(t, "A.", FirstSentences("A.", 3))
	assert.Equal(t, "", FirstSentences("", 2))
}

func TestTruncateBytes(t *testing.T) {
	s := strings.Repeat("é", 10) // 2 bytes each
	got := TruncateBytes(s, 5)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 5)
	assert.Equal(t, "éé", got)
	assert.Equal(t, "abc", TruncateBytes("abc", 10))
	assert.Equal(t, "", TruncateBytes("abc", 0))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "ééé", TruncateRunes(strings.Repeat("é", 10), 3))
	assert.Equal(t, "ab", TruncateRunes("ab", 3))
}

func TestEnsureTerminal(t *testing.T) {
	assert.Equal(t, "Hello.", EnsureTerminal("Hello"))
	assert.Equal(t, "Hello!", EnsureTerminal("Hello!"))
	assert.Equal(t, "Hello?", EnsureTerminal(" Hello? "))
	assert.Equal(t, "", EnsureTerminal("  "))
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "## About me\nI build things.", "About me I build things."},
		{"bold italic", "**Bold** and *italic* and __strong__ and _em_.", "Bold and italic and strong and em."},
		{"bullets", "- one\n* two\n+ three\n1. four", "one two three four"},
		{"blockquote", "> quoted\n>> nested", "quoted nested"},
		{"horizontal rule", "above\n---\nbelow", "above below"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "a b 1 2"},
		{"fenced code", "Before\n```go\nfunc main() {}\n```\nAfter", "Before After"},
		{"inline code", "Use `kubectl` daily.", "Use kubectl daily."},
		{"link keeps label", "See [my site](https://example.com).", "See my site."},
		{"snake case kept", "set max_tokens here", "set max_tokens here"},
		{"html tag", "Line<br>break", "Line break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripMarkdown(got), "stripping is idempotent")
		})
	}
}
