// Package lang picks the response language and holds the localized canned replies.
package lang

import (
	"regexp"
	"strings"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

var (
	frenchWords = map[string]bool{
		"bonjour": true, "salut": true, "merci": true, "quelles": true, "quels": true, "quel": true,
		"quelle": true, "vous": true, "tes": true, "votre": true, "vos": true, "est": true, "sont": true,
		"comment": true, "pourquoi": true, "avez": true, "êtes": true, "suis": true, "je": true,
		"les": true, "des": true, "une": true, "projets": true, "compétences": true, "qui": true,
		"parle": true, "moi": true, "toi": true, "pour": true, "avec": true, "dans": true, "au": true,
	}
	elisions  = map[string]bool{"l": true, "d": true, "j": true, "n": true, "c": true, "qu": true, "m": true, "t": true, "s": true}
	wordRe    = regexp.MustCompile(`[\p{L}']+`)
	accentsRe = regexp.MustCompile(`[àâçéèêëîïôûùüÿœ]`)
)

// Detect returns French when the message reads as French, English otherwise.
func Detect(message string) Language {
	lowered := strings.ToLower(message)
	words := wordRe.FindAllString(lowered, -1)
	if len(words) == 0 {
		return English
	}

	hits := 0
	for _, w := range words {
		w = strings.Trim(w, "'")
		if i := strings.IndexByte(w, '\''); i >= 0 {
			// j'ai, l'expérience
			if elisions[w[:i]] {
				hits++
			}
			w = w[i+1:]
		}
		if frenchWords[w] {
			hits++
		}
	}
	if accentsRe.MatchString(lowered) {
		hits++
	}

	if hits >= 2 || (len(words) <= 2 && hits >= 1) {
		return French
	}
	return English
}

// Parse maps a client supplied language tag onto a supported language.
func Parse(tag string) (Language, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case strings.HasPrefix(tag, "fr"):
		return French, true
	case strings.HasPrefix(tag, "en"):
		return English, true
	}
	return English, false
}

// Name is the language name used inside prompts.
func (l Language) Name() string {
	if l == French {
		return "French"
	}
	return "English"
}
