package retrieval

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus() []core.Document {
	return []core.Document{
		{Title: "About", Content: "I am a cloud engineer based in Lisbon. I enjoy hiking.", Source: "config"},
		{Title: "Project: Serverless Chatbot", Content: "Built a serverless chatbot on AWS Lambda. It answers portfolio questions. The UI is plain HTML.", Source: "config"},
		{Title: "Project: Data Pipeline", Content: "Designed a streaming data pipeline with Kafka and Go.", Source: "docs/pipeline.md"},
		{Title: "Certification: AWS Certified Cloud Practitioner", Content: "", Source: "config"},
		{Title: "Blog", Content: "Notes about gardening and photography.", Source: "docs/blog.md"},
	}
}

func TestScorer_GreetingShortCircuit(t *testing.T) {
	s := NewDefaultScorer()

	for _, q := range []string{"hi", "Hello!", "hey there", "Good morning", "bonjour"} {
		res := s.Score(q, corpus())
		assert.Equal(t, GreetingContext, res.Context, q)
		assert.Empty(t, res.Sources, q)
	}

	res := s.Score("hi, what projects did you build?", corpus())
	assert.NotEqual(t, GreetingContext, res.Context)
}

func TestScorer_EmptyCorpus(t *testing.T) {
	res := NewDefaultScorer().Score("tell me about kafka", nil)

	assert.True(t, res.IsEmpty())
	assert.Empty(t, res.Sources)
}

func TestScorer_NoMatch(t *testing.T) {
	docs := []core.Document{
		{Title: "Blog", Content: "Notes on gardening and photography.", Source: "docs/blog.md"},
		{Title: "Pipeline", Content: "Streaming data with Kafka and Go.", Source: "docs/pipeline.md"},
	}
	res := NewDefaultScorer().Score("quantum chromodynamics", docs)

	assert.True(t, res.IsEmpty())
	assert.Empty(t, res.Sources)
}

func TestScorer_HintsScoreWithoutQueryOverlap(t *testing.T) {
	docs := []core.Document{
		{Title: "Blog", Content: "Notes on gardening.", Source: "docs/blog.md"},
		{Title: "Workshop", Content: "A project about skill building.", Source: "config"},
	}

	ranked := NewDefaultScorer().Rank(QueryTokens("zebra quantum"), docs)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 3*hintWeight, ranked[0].Score, 0.001, "project, about, skill")

	res := NewDefaultScorer().Score("zebra quantum", docs)
	assert.Equal(t, []string{"config"}, res.Sources)
	assert.Equal(t, "A project about skill building.", res.Context)
}

func TestScorer_RanksByOverlap(t *testing.T) {
	s := NewDefaultScorer()
	res := s.Score("Which pipeline did you build with Kafka?", corpus())

	require.NotEmpty(t, res.Sources)
	assert.Equal(t, "docs/pipeline.md", res.Sources[0])
	assert.True(t, strings.HasPrefix(res.Context, "Designed a streaming data pipeline"))
}

func TestScorer_KeepsRelevantSentences(t *testing.T) {
	docs := []core.Document{
		{Title: "Serverless Chatbot", Content: "Built a serverless chatbot on AWS Lambda. It answers portfolio questions. The UI is plain HTML.", Source: "config"},
		{Title: "Blog", Content: "Notes on gardening.", Source: "docs/blog.md"},
	}
	res := NewDefaultScorer().Score("serverless lambda", docs)

	require.Equal(t, []string{"config"}, res.Sources)
	assert.Equal(t, "Built a serverless chatbot on AWS Lambda.", res.Context)
}

func TestScorer_FallbackToContentHead(t *testing.T) {
	docs := []core.Document{{Title: "Kubernetes", Content: strings.Repeat("word ", 200), Source: "docs/k8s.md"}}
	res := NewDefaultScorer().Score("kubernetes", docs)

	assert.Equal(t, strings.TrimSpace(strings.Repeat("word ", 80)), res.Context)
}

func TestScorer_TopThree(t *testing.T) {
	var docs []core.Document
	for i := 0; i < 6; i++ {
		docs = append(docs, core.Document{
			Title:   fmt.Sprintf("Golang note %d", i),
			Content: "Golang is fun.",
			Source:  fmt.Sprintf("docs/%d.md", i),
		})
	}
	res := NewDefaultScorer().Score("golang", docs)

	assert.Equal(t, []string{"docs/0.md", "docs/1.md", "docs/2.md"}, res.Sources, "ties keep corpus order")
	assert.Equal(t, 2, strings.Count(res.Context, ContextSeparator))
}

func TestScorer_StemmedMatchWeighsLess(t *testing.T) {
	docs := []core.Document{
		{Title: "Certified", Content: "Certified engineer.", Source: "stem"},
		{Title: "Certifications", Content: "Certifications list.", Source: "raw"},
	}
	ranked := NewDefaultScorer().Rank(QueryTokens("certifications"), docs)

	require.Len(t, ranked, 2)
	assert.Equal(t, "raw", ranked[0].Source)
	assert.InDelta(t, 1.0+hintWeight, ranked[0].Score, 0.001, "raw match plus the certification hint")
	assert.InDelta(t, stemWeight, ranked[1].Score, 0.001)
}

func TestScorer_CertificationSubstringFallback(t *testing.T) {
	docs := []core.Document{
		{Title: "Badges", Content: "Recertified twice in networking.", Source: "docs/badges.md"},
		{Title: "Blog", Content: "Gardening.", Source: "docs/blog.md"},
	}
	require.Empty(t, NewDefaultScorer().Rank(QueryTokens("certifications?"), docs))

	res := NewDefaultScorer().Score("certifications?", docs)

	assert.Equal(t, []string{"docs/badges.md"}, res.Sources)
}

func TestScorer_TeachingFallback(t *testing.T) {
	docs := []core.Document{
		{Title: "Notes", Content: "Some notes on Azure.", Source: "docs/notes.md"},
		{Title: "Community", Content: "I run mentoring sessions for junior developers.", Source: "config"},
	}
	res := NewDefaultScorer().Score("Do you teach Azure?", docs)

	assert.Equal(t, []string{"config"}, res.Sources)
	assert.Contains(t, res.Context, "mentoring")
}

func TestScorer_ContextIsBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	words := []string{"aws", "go", "kafka", "cloud", "project", "é", "数据", "lambda", "teach", "skill"}
	s := NewDefaultScorer()

	for round := 0; round < 50; round++ {
		var docs []core.Document
		for i := 0; i < 1+rnd.Intn(8); i++ {
			var b strings.Builder
			for j := 0; j < rnd.Intn(600); j++ {
				b.WriteString(words[rnd.Intn(len(words))])
				if rnd.Intn(7) == 0 {
					b.WriteString(". ")
				} else {
					b.WriteString(" ")
				}
			}
			docs = append(docs, core.Document{Title: words[rnd.Intn(len(words))], Content: b.String(), Source: "s"})
		}
		query := words[rnd.Intn(len(words))] + " " + words[rnd.Intn(len(words))]

		res := s.Score(query, docs)
		assert.LessOrEqual(t, len(res.Context), DefaultMaxContext)
		assert.LessOrEqual(t, len([]rune(res.Context)), DefaultMaxContext)
	}
}
