package sanitize

import (
	"strings"
	"testing"

	"github.com/sandevgo/sensei/internal/service/lang"
	"github.com/stretchr/testify/assert"
)

func TestSanitize_Steps(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		question string
		user     string
		want     string
	}{
		{
			name: "code blocks removed",
			raw:  "I mostly write Go.\n```go\nfmt.Println(\"hi\")\n```",
			want: "I mostly write Go.",
		},
		{
			name: "inline code unwrapped",
			raw:  "I deploy with `terraform` daily",
			want: "I deploy with terraform daily.",
		},
		{
			name: "markdown flattened",
			raw:  "## Summary\n- **Cloud** engineer\n- builds _serverless_ apps.",
			want: "Summary Cloud engineer builds serverless apps.",
		},
		{
			name: "truncated to two sentences",
			raw:  "First one. Second one! Third one? Fourth.",
			want: "First one. Second one!",
		},
		{
			name: "dangling quotes removed",
			raw:  `He led the migration."`,
			want: "He led the migration.",
		},
		{
			name: "meta commentary removed",
			raw:  "According to the context, he led a team of five. Note: this is from the bio.",
			want: "He led a team of five.",
		},
		{
			name: "self assessment removed",
			raw:  "He teaches AWS workshops. Does this answer follow the guidelines?",
			want: "He teaches AWS workshops.",
		},
		{
			name:     "echo of question removed",
			raw:      "What projects has he built?: He built a serverless chatbot.",
			question: "What projects has he built?",
			want:     "He built a serverless chatbot.",
		},
		{
			name: "echo lead-in removed",
			raw:  "You asked about his stack. He uses Go and AWS.",
			want: "He uses Go and AWS.",
		},
		{
			name: "uncertainty gets help tail",
			raw:  "I don't have details about that project.",
			want: "I don't have details about that project. How can I help further?",
		},
		{
			name: "help tail not duplicated",
			raw:  "I'm not sure. How can I help further?",
			want: "I'm not sure. How can I help further?",
		},
		{
			name: "urls removed",
			raw:  "See https://example.com/projects for more. Or www.example.org.",
			want: "See for more. Or.",
		},
		{
			name: "markdown link keeps only the label",
			raw:  "Check the [case study](https://example.com/case).",
			want: "Check the case study.",
		},
		{
			name: "leading url leaves a capitalized sentence",
			raw:  "https://jane.dev showcases her recent work.",
			want: "Showcases her recent work.",
		},
		{
			name: "heading marker exposed by meta removal",
			raw:  "According to the context, # Heading here.",
			want: "Heading here.",
		},
		{
			name: "salutation to user removed",
			raw:  "Hi Ana, he has eight years of experience.",
			user: "Ana",
			want: "He has eight years of experience.",
		},
		{
			name: "empty becomes no-info",
			raw:  "```\ncode only\n```",
			want: lang.For(lang.English).NoInfo,
		},
		{
			name: "generation failure passes through",
			raw:  lang.GenerationFailed,
			want: lang.GenerationFailed,
		},
	}

	s := New(DefaultMaxSentences)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.raw, tt.question, tt.user, lang.English)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitize_EchoSuppression(t *testing.T) {
	question := "What certifications does he hold?"
	raw := question + ": He holds two AWS certifications."

	got := New(DefaultMaxSentences).Sanitize(raw, question, "", lang.English)

	assert.False(t, strings.Contains(got, question))
	assert.Equal(t, "He holds two AWS certifications.", got)
}

func TestSanitize_EchoNeedsWholeWords(t *testing.T) {
	tests := []struct {
		question string
		raw      string
		want     string
	}{
		{"Go", "Good question, Go is great.", "Good question, Go is great."},
		{"AWS", "AWSome work on cloud.", "AWSome work on cloud."},
		{"Go", "Go is great.", "Is great."},
		{"Do you know Go?", "Do you know Go? Yes, daily.", "Yes, daily."},
	}

	s := New(DefaultMaxSentences)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.raw, tt.question, "", lang.English))
		})
	}
}

func TestSanitize_FrenchTail(t *testing.T) {
	fr := lang.For(lang.French)
	got := New(DefaultMaxSentences).Sanitize("Je n'ai pas cette information.", "", "", lang.French)

	assert.Equal(t, "Je n'ai pas cette information. "+fr.HelpFurther, got)
}

func TestSanitize_Idempotent(t *testing.T) {
	samples := []string{
		"",
		"Plain answer",
		"**Bold** answer with a [link](https://x.io). Second sentence! Third?",
		"I don't have that. Maybe later. Sorry.",
		"I don't have that.",
		"Not sure about https://example.com/page. Ask again",
		"> Quote\n> more\n\n| a | b |\n|---|---|\n| c | d |",
		"Note: meta first. Real answer here.",
		"According to the provided context: he likes Go.",
		"You asked: what is his stack? Go, AWS.",
		"`code` and ```block``` and '''",
		"Answer: He teaches. Is this response compliant with the rules?",
		"Hi Ana! He is based in Lisbon.",
		lang.For(lang.English).NoInfo,
		lang.For(lang.French).NoInfo,
		lang.GenerationFailed,
		"He built 3 apps... and more.",
		"“Quoted answer”",
		"https://jane.dev showcases her recent work.",
		"According to the context, # Heading here.",
		"Based on the context: https://a.io ## see **b**.",
		"www.example.org note: x. y.",
	}

	s := New(DefaultMaxSentences)
	for _, l := range []lang.Language{lang.English, lang.French} {
		for _, raw := range samples {
			once := s.Sanitize(raw, "what is his stack?", "Ana", l)
			twice := s.Sanitize(once, "what is his stack?", "Ana", l)
			assert.Equal(t, once, twice, "raw=%q lang=%s", raw, l)
		}
	}
}

func TestStripURLs(t *testing.T) {
	assert.Equal(t, "Visit .", StripURLs("Visit https://example.com."))
	assert.Equal(t, "a  b", StripURLs("a www.example.com/x?y=1 b"))
	assert.Equal(t, "no links", StripURLs("no links"))
}
