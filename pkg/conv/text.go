package conv

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sentenceEnders = map[rune]bool{
	'.': true, '!': true, '?': true,
	'。': true, '！': true, '？': true, '…': true,
}

var spaceRun = regexp.MustCompile(`\s+`)

// SplitSentences cuts text after terminal punctuation that is followed by
// whitespace or the end of input. Abbreviations are not special-cased.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)

	for i, r := range runes {
		current.WriteRune(r)
		if !sentenceEnders[r] {
			continue
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// FirstSentences keeps at most n sentences, joined by single spaces.
func FirstSentences(text string, n int) string {
	sentences := SplitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, " ")
}

// CollapseSpaces turns every whitespace run into a single space.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// TruncateBytes cuts s to at most n bytes without splitting a rune.
func TruncateBytes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// HasTerminal reports whether s ends with sentence punctuation.
func HasTerminal(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return sentenceEnders[r]
}

// EnsureTerminal appends a period when s does not end a sentence.
func EnsureTerminal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || HasTerminal(s) {
		return s
	}
	return s + "."
}
