// Package prompt renders the instruction block sent to the generator.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/lang"
	"github.com/sandevgo/sensei/pkg/conv"
)

type Template int

const (
	General Template = iota
	STAR
)

func (t Template) String() string {
	if t == STAR {
		return "star"
	}
	return "general"
}

const (
	DefaultMaxTokens = 1800
	defaultOwner     = "the portfolio owner"
	maxShrinkSteps   = 12
)

type Params struct {
	Template  Template
	Context   string
	Question  string
	Name      string
	Language  lang.Language
	AgentName string
	OwnerName string
}

type Builder struct {
	maxTokens int
	count     Counter
}

func NewBuilder(maxTokens int) *Builder {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Builder{maxTokens: maxTokens, count: CountTokens}
}

// WithCounter swaps the token counter, mostly for tests.
func (b *Builder) WithCounter(c Counter) *Builder {
	if c != nil {
		b.count = c
	}
	return b
}

// Build renders p. When the prompt is over the token budget the context
// block is shortened until it fits or is gone.
func (b *Builder) Build(p Params) string {
	out := Render(p)
	for i := 0; i < maxShrinkSteps && p.Context != "" && b.count(out) > b.maxTokens; i++ {
		keep := utf8.RuneCountInString(p.Context) * 3 / 4
		p.Context = strings.TrimSpace(conv.TruncateRunes(p.Context, keep))
		out = Render(p)
	}
	return out
}

// Tokens reports the size of text as counted by the builder.
func (b *Builder) Tokens(text string) int {
	return b.count(text)
}

// Render is the pure template function.
func Render(p Params) string {
	agent := p.AgentName
	if agent == "" {
		agent = core.AgentName
	}
	owner := strings.TrimSpace(p.OwnerName)
	if owner == "" {
		owner = defaultOwner
	}

	var b strings.Builder
	writeIdentity(&b, agent, owner)
	writeGrounding(&b, p.Language)

	switch p.Template {
	case STAR:
		writeSTAR(&b)
	default:
		b.WriteString("Answer in at most 2 short sentences of plain text. No markdown, no lists, no links.\n")
	}

	if name := strings.TrimSpace(p.Name); name != "" {
		fmt.Fprintf(&b, "The visitor's name is %s. You may address them by name.\n", name)
	}

	b.WriteString("\nContext:\n")
	b.WriteString(strings.TrimSpace(p.Context))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(strings.TrimSpace(p.Question))
	b.WriteString("\nAnswer:")
	return b.String()
}

func writeIdentity(b *strings.Builder, agent, owner string) {
	fmt.Fprintf(b, "You are %s, the assistant on the portfolio website of %s.\n", agent, owner)
	fmt.Fprintf(b, "You and %s are different people. Talk about %s in the third person, never claim to be %s and never present %s's experience as your own.\n", owner, owner, owner, owner)
	fmt.Fprintf(b, "If asked for your own name, your name is %s.\n", agent)
}

func writeGrounding(b *strings.Builder, language lang.Language) {
	b.WriteString("Use ONLY the context below. Do not use outside knowledge and do not invent facts.\n")
	fmt.Fprintf(b, "If the context does not contain the answer, reply exactly: \"%s\"\n", lang.For(language).NoInfo)
	fmt.Fprintf(b, "Reply in %s.\n", language.Name())
}

func writeSTAR(b *strings.Builder) {
	b.WriteString("Describe 2 to 3 projects from the context in STAR format.\n")
	b.WriteString("Each example must contain exactly these four labeled fields, one sentence each:\n")
	b.WriteString("Situation: the context of the project.\n")
	b.WriteString("Task: what had to be achieved.\n")
	b.WriteString("Action: what was done.\n")
	b.WriteString("Result: the outcome.\n")
	b.WriteString("Do not include URLs or links.\n")
}
