// Package retrieval ranks documents by lexical overlap with a query and
// assembles a bounded context block from the best matches.
package retrieval

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/conv"
)

const (
	DefaultTopK          = 3
	DefaultMaxContext    = 1500
	DefaultFallbackChars = 400
	ContextSeparator     = "\n---\n"

	// GreetingContext is returned instead of retrieved text when the whole
	// message is a greeting.
	GreetingContext = "[greeting] Respond with a short, friendly greeting."

	hintWeight         = 0.5
	stemWeight         = 0.8
	teachingConfidence = 1.5
)

var (
	DefaultHints = []string{"certification", "project", "skill", "teach", "about", "experience"}

	greetingOnly = regexp.MustCompile(`^(hi|hello|hey|hiya|howdy|yo|greetings|hola|bonjour|salut|coucou|good (morning|afternoon|evening|day))( there)?( (sensei|everyone|all))?[\s!.,]*$`)

	// TeachingPattern is shared with the router's teaching intent.
	TeachingPattern = regexp.MustCompile(`(?i)\b(teach\w*|mentor\w*|train(ing|er|ers|s)?|coach\w*|tutor\w*|instruct\w*|lectur\w*|workshops?|courses?|students?|enseign\w*|formation|formateur)\b`)
)

type Config struct {
	TopK          int
	MaxContext    int
	FallbackChars int
	Hints         []string
}

type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.MaxContext <= 0 {
		cfg.MaxContext = DefaultMaxContext
	}
	if cfg.FallbackChars <= 0 {
		cfg.FallbackChars = DefaultFallbackChars
	}
	if cfg.Hints == nil {
		cfg.Hints = DefaultHints
	}
	return &Scorer{cfg: cfg}
}

func NewDefaultScorer() *Scorer {
	return NewScorer(Config{})
}

// IsGreetingOnly reports whether the whole message is a greeting phrase.
func IsGreetingOnly(query string) bool {
	return greetingOnly.MatchString(strings.ToLower(strings.TrimSpace(query)))
}

func (s *Scorer) Score(query string, docs []core.Document) core.RetrievalResult {
	if IsGreetingOnly(query) {
		return core.RetrievalResult{Context: GreetingContext, Sources: []string{}}
	}
	if len(docs) == 0 {
		return core.RetrievalResult{Sources: []string{}}
	}

	lowered := strings.ToLower(query)
	qTokens := QueryTokens(query)
	hints := s.activeHints(lowered)

	ranked := s.Rank(qTokens, docs)
	top := ranked
	if len(top) > s.cfg.TopK {
		top = top[:s.cfg.TopK]
	}

	if len(top) == 0 && strings.Contains(lowered, "certif") {
		top = s.filter(docs, func(d core.Document) bool {
			return strings.Contains(strings.ToLower(d.Text()), "certif")
		})
	}

	if TeachingPattern.MatchString(query) && bestScore(top) < teachingConfidence {
		if teaching := s.filter(docs, func(d core.Document) bool {
			return TeachingPattern.MatchString(d.Title) || TeachingPattern.MatchString(d.Content)
		}); len(teaching) > 0 {
			top = teaching
		}
	}

	return s.assemble(top, qTokens, hints)
}

// Rank scores every document and returns those with a positive score,
// best first. Ties keep corpus order. Every hint keyword found in a
// document adds to its score, whatever the query says.
func (s *Scorer) Rank(qTokens []string, docs []core.Document) []core.ScoredDocument {
	var scored []core.ScoredDocument
	for i, d := range docs {
		score := scoreDocument(qTokens, s.cfg.Hints, d)
		if score > 0 {
			scored = append(scored, core.ScoredDocument{Document: d, Score: score, Index: i})
		}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

func scoreDocument(qTokens, hints []string, d core.Document) float64 {
	text := d.Text()
	tokens := tokenSet(text)
	stems := stemSet(tokens)

	var score float64
	for _, q := range qTokens {
		if _, ok := tokens[q]; ok {
			score++
			continue
		}
		if _, ok := stems[Stem(q)]; ok {
			score += stemWeight
		}
	}

	lowered := strings.ToLower(text)
	for _, h := range hints {
		if strings.Contains(lowered, h) {
			score += hintWeight
		}
	}
	return score
}

// activeHints are the hint keywords the query itself mentions. They only
// widen the sentence filter of the context assembly.
func (s *Scorer) activeHints(loweredQuery string) []string {
	var out []string
	for _, h := range s.cfg.Hints {
		if strings.Contains(loweredQuery, h) {
			out = append(out, h)
		}
	}
	return out
}

func (s *Scorer) filter(docs []core.Document, keep func(core.Document) bool) []core.ScoredDocument {
	var out []core.ScoredDocument
	for i, d := range docs {
		if keep(d) {
			out = append(out, core.ScoredDocument{Document: d, Index: i})
			if len(out) == s.cfg.TopK {
				break
			}
		}
	}
	return out
}

func (s *Scorer) assemble(top []core.ScoredDocument, qTokens, hints []string) core.RetrievalResult {
	pieces := make([]string, 0, len(top))
	sources := make([]string, 0, len(top))

	for _, d := range top {
		if piece := s.relevantText(d.Content, qTokens, hints); piece != "" {
			pieces = append(pieces, piece)
		}
		if d.Source != "" {
			sources = append(sources, d.Source)
		}
	}

	ctx := strings.Join(pieces, ContextSeparator)
	return core.RetrievalResult{
		Context: conv.TruncateBytes(ctx, s.cfg.MaxContext),
		Sources: sources,
	}
}

// relevantText keeps the sentences that mention a query token or active
// hint, or the head of the content when none do.
func (s *Scorer) relevantText(content string, qTokens, hints []string) string {
	want := toSet(qTokens...)
	var kept []string

	for _, sentence := range conv.SplitSentences(content) {
		if sentenceMatches(sentence, want, hints) {
			kept = append(kept, sentence)
		}
	}

	if len(kept) == 0 {
		return strings.TrimSpace(conv.TruncateRunes(content, s.cfg.FallbackChars))
	}
	return strings.Join(kept, " ")
}

func sentenceMatches(sentence string, want map[string]struct{}, hints []string) bool {
	for _, tok := range Tokenize(sentence) {
		if _, ok := want[tok]; ok {
			return true
		}
	}
	lowered := strings.ToLower(sentence)
	for _, h := range hints {
		if strings.Contains(lowered, h) {
			return true
		}
	}
	return false
}

func bestScore(top []core.ScoredDocument) float64 {
	if len(top) == 0 {
		return 0
	}
	return top[0].Score
}
