package router

import (
	"regexp"
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/retrieval"
	"github.com/sandevgo/sensei/pkg/conv"
)

const (
	maxSkills        = 50
	aboutCap         = 600
	aboutSentences   = 2
	teachingCap      = 600
	teachingMaxLines = 3
)

var (
	certTitleRe  = regexp.MustCompile(`(?i)^certifications?\s*:\s*(.+)$`)
	skillsTitle  = regexp.MustCompile(`(?i)^(skills?|compétences?)\b`)
	aboutTitle   = regexp.MustCompile(`(?i)^(about|summary|bio|biography|profile|à propos)\b`)
	bioCues      = regexp.MustCompile(`(?i)\b(i am|i'm|my name is|i have|i've|i work|i build|i lead|je suis|j'ai|je travaille)\b`)
	skillBullet  = regexp.MustCompile(`^\s*(?:[-*+•]|\d{1,2}[.)])\s*`)
	skillSplitRe = regexp.MustCompile(`[,;\n]`)
)

// certificationNames lists "Certification: <name>" titles of config
// documents, first seen first. aiOnly keeps those that mention AI or ML.
func certificationNames(docs []core.Document, aiOnly bool) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, d := range docs {
		if !d.IsConfig() {
			continue
		}
		m := certTitleRe.FindStringSubmatch(strings.TrimSpace(d.Title))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if aiOnly && !aiRe.MatchString(d.Title+" "+d.Content) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// skillNames collects skills from config documents titled "Skills".
// Content is either "Category: a, b | Other: c" or a flat list.
func skillNames(docs []core.Document) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, d := range docs {
		if !d.IsConfig() || !skillsTitle.MatchString(strings.TrimSpace(d.Title)) {
			continue
		}
		for _, name := range parseSkills(d.Content) {
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, name)
			if len(names) == maxSkills {
				return names
			}
		}
	}
	return names
}

func parseSkills(content string) []string {
	var out []string
	for _, group := range strings.Split(content, "|") {
		for _, line := range strings.Split(group, "\n") {
			line = skillBullet.ReplaceAllString(line, "")
			if i := strings.Index(line, ":"); i >= 0 {
				line = line[i+1:]
			}
			for _, item := range skillSplitRe.Split(line, -1) {
				item = strings.TrimRight(strings.TrimSpace(item), ".")
				if item != "" {
					out = append(out, item)
				}
			}
		}
	}
	return out
}

// aboutText picks the About or Summary config document, or the richest
// config document written in the first person.
func aboutText(docs []core.Document) string {
	var best, cue core.Document
	for _, d := range docs {
		if !d.IsConfig() || strings.TrimSpace(d.Content) == "" {
			continue
		}
		if aboutTitle.MatchString(strings.TrimSpace(d.Title)) {
			if len(d.Content) > len(best.Content) {
				best = d
			}
			continue
		}
		if bioCues.MatchString(d.Content) && len(d.Content) > len(cue.Content) {
			cue = d
		}
	}
	if best.Content == "" {
		best = cue
	}
	if best.Content == "" {
		return ""
	}

	text := conv.StripMarkdown(best.Content)
	text = conv.TruncateRunes(conv.FirstSentences(text, aboutSentences+1), aboutCap)
	text = conv.FirstSentences(text, aboutSentences)
	return conv.EnsureTerminal(text)
}

// teachingText picks the longest document about teaching, config first,
// and keeps its teaching sentences.
func teachingText(docs []core.Document) string {
	var config, other core.Document
	for _, d := range docs {
		if !retrieval.TeachingPattern.MatchString(d.Title) && !retrieval.TeachingPattern.MatchString(d.Content) {
			continue
		}
		if d.IsConfig() {
			if len(d.Content) > len(config.Content) {
				config = d
			}
		} else if len(d.Content) > len(other.Content) {
			other = d
		}
	}
	pick := config
	if pick.Content == "" {
		pick = other
	}

	sentences := conv.SplitSentences(conv.StripMarkdown(pick.Content))
	if len(sentences) == 0 {
		return ""
	}

	var kept []string
	for _, s := range sentences {
		if retrieval.TeachingPattern.MatchString(s) {
			kept = append(kept, s)
			if len(kept) == teachingMaxLines {
				break
			}
		}
	}
	if len(kept) == 0 {
		kept = sentences
		if len(kept) > teachingMaxLines {
			kept = kept[:teachingMaxLines]
		}
	}

	return conv.EnsureTerminal(conv.TruncateRunes(strings.Join(kept, " "), teachingCap))
}
