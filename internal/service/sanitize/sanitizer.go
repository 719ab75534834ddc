// Package sanitize turns raw generated text into a short, plain reply.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sandevgo/sensei/internal/service/lang"
	"github.com/sandevgo/sensei/pkg/conv"
)

const (
	DefaultMaxSentences = 2

	maxPasses = 8
)

var (
	metaPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(according to|based on) the (provided |given |available )?(context|information|documents?|sources?|data)\b[,:]?\s*`),
		regexp.MustCompile(`(?i)\b(d'après|selon) (le|les) (contexte|informations?|documents?)\b[,:]?\s*`),
		regexp.MustCompile(`(?i)\bas an ai( language model| assistant)?\b[,:]?\s*`),
		regexp.MustCompile(`(?i)(^|\s)note\s*:[^.!?]*[.!?]?`),
		regexp.MustCompile(`(?i)\b(does|did|do) (this|my) (answer|response|reply)[^.!?]*\b(guidelines?|rules?|instructions?|requirements?|format)\b[^.!?]*\?`),
		regexp.MustCompile(`(?i)\bis this (answer|response) (compliant|acceptable|okay|ok)[^.!?]*\?`),
	}
	echoLeadIns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(you asked( me)?|your question( was| is)?|question|q)\s*:\s*`),
		regexp.MustCompile(`(?i)^you asked[^.!?:]*[.!?:]\s*`),
		regexp.MustCompile(`(?i)^(answer|response|réponse|a)\s*:\s*`),
	}
	uncertainty = regexp.MustCompile(`(?i)(i don't have|i do not have|i don't know|i do not know|not sure|no information|unable to find|can't find|cannot find|je n'ai pas|je ne sais pas|pas d'information|aucune information)`)
	urlRe       = regexp.MustCompile(`(?i)(https?://|www\.)[^\s]*[^\s.,;:!?)"'\]]`)
	spaceBefore = regexp.MustCompile(`\s+([.,!?;:])`)
	danglingEnd = "\"'`“”‘’«» "
	leadingJunk = " \t\n:;,.-–—"
)

type Sanitizer struct {
	maxSentences int
}

func New(maxSentences int) *Sanitizer {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	return &Sanitizer{maxSentences: maxSentences}
}

// Sanitize applies every cleaning step in order, repeating the pass until
// the text stops changing. The result is a fixed point: sanitizing it
// again returns the same text.
func (s *Sanitizer) Sanitize(raw, userMessage, userName string, language lang.Language) string {
	msgs := lang.For(language)

	text := raw
	for i := 0; i < maxPasses; i++ {
		next := s.clean(text, userMessage, userName, msgs.HelpFurther)
		if next == text {
			break
		}
		text = next
	}

	if !hasContent(text) {
		return msgs.NoInfo
	}
	return text
}

// clean is a single pass. Removing a URL or a meta phrase can expose a
// lowercase start or a markdown marker that only the next pass handles.
func (s *Sanitizer) clean(text, userMessage, userName, helpTail string) string {
	text = conv.StripMarkdown(text)
	text = stripEcho(text, userMessage)
	text = stripSalutation(text, userName)
	text = conv.FirstSentences(text, s.maxSentences)
	text = trimDangling(text)
	text = conv.EnsureTerminal(text)
	text = stripMeta(text)
	text = stripEcho(text, userMessage)
	text = appendHelpTail(text, helpTail)
	text = StripURLs(text)
	text = capitalize(tidy(text))
	return conv.EnsureTerminal(trimDangling(text))
}

// stripEcho drops a verbatim copy of the question and generic lead-ins.
func stripEcho(text, userMessage string) string {
	q := conv.CollapseSpaces(userMessage)
	for {
		before := text
		if echoes(text, q) {
			text = strings.TrimLeft(text[len(q):], leadingJunk+"?!")
		}
		for _, re := range echoLeadIns {
			text = re.ReplaceAllString(text, "")
		}
		if text == before {
			return capitalize(text)
		}
	}
}

// echoes reports whether text opens with the question q as whole words:
// "Go" is echoed by "Go is great" but not by "Good question".
func echoes(text, q string) bool {
	if q == "" || len(text) < len(q) || !strings.EqualFold(text[:len(q)], q) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(q)
	next, _ := utf8.DecodeRuneInString(text[len(q):])
	return !isWordRune(last) || !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stripSalutation drops an opening "Hi <name>," aimed at the visitor.
func stripSalutation(text, userName string) string {
	name := strings.TrimSpace(userName)
	if name == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)^(hi|hello|hey|dear|bonjour|salut)\s+` + regexp.QuoteMeta(name) + `\s*[,!.:]\s*`)
	return capitalize(re.ReplaceAllString(text, ""))
}

func stripMeta(text string) string {
	for _, re := range metaPhrases {
		text = re.ReplaceAllString(text, " ")
	}
	return capitalize(tidy(text))
}

func appendHelpTail(text, tail string) string {
	if !uncertainty.MatchString(text) || strings.Contains(text, tail) {
		return text
	}
	return conv.EnsureTerminal(text) + " " + tail
}

// StripURLs removes web addresses, keeping trailing punctuation.
func StripURLs(text string) string {
	return urlRe.ReplaceAllString(text, "")
}

func trimDangling(text string) string {
	return strings.TrimRight(text, danglingEnd)
}

func tidy(text string) string {
	text = conv.CollapseSpaces(text)
	text = spaceBefore.ReplaceAllString(text, "$1")
	text = strings.TrimLeft(text, leadingJunk)
	return strings.TrimSpace(text)
}

func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

func hasContent(text string) bool {
	for _, r := range text {
		if isWordRune(r) {
			return true
		}
	}
	return false
}
