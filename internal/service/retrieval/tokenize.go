package retrieval

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// stopwords never count towards overlap; they match almost every document.
var stopwords = toSet(
	"a", "an", "the", "and", "or", "but", "of", "to", "in", "on", "at", "for", "with", "by", "from",
	"is", "are", "was", "were", "be", "been", "am", "do", "does", "did", "have", "has", "had",
	"i", "me", "my", "you", "your", "yours", "he", "she", "it", "we", "they", "them", "his", "her",
	"what", "which", "who", "whom", "how", "when", "where", "why", "can", "could", "would", "should",
	"will", "shall", "may", "might", "must", "this", "that", "these", "those", "there", "here",
	"about", "tell", "please", "any", "some", "so", "if", "as", "into", "than", "then", "too", "very",
	"le", "la", "les", "un", "une", "des", "de", "du", "et", "ou", "est", "sont", "je", "tu", "vous",
	"il", "elle", "nous", "ils", "quel", "quelle", "quels", "quelles", "que", "qui", "quoi", "comment",
	"pour", "avec", "dans", "sur", "ton", "ta", "tes", "votre", "vos", "mon", "ma", "mes",
)

// Tokenize lowercases text and returns its word tokens in order.
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// QueryTokens returns the distinct, non-stopword tokens of a query in order.
func QueryTokens(query string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokenize(query) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func tokenSet(text string) map[string]struct{} {
	return toSet(Tokenize(text)...)
}

func stemSet(tokens map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for tok := range tokens {
		out[Stem(tok)] = struct{}{}
	}
	return out
}

func toSet(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}
