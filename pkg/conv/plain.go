package conv

import (
	"regexp"
	"strings"
)

var (
	fencedCode   = regexp.MustCompile("(?s)```.*?```")
	strayFence   = regexp.MustCompile("`{3,}")
	inlineCode   = regexp.MustCompile("`([^`\n]*)`")
	strayTick    = regexp.MustCompile("`+")
	mdImage      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	autoLink     = regexp.MustCompile(`<((?:https?://|mailto:)[^>\s]+)>`)
	htmlTag      = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	horizontal   = regexp.MustCompile(`(?m)^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	tableDivider = regexp.MustCompile(`(?m)^[ \t]*\|?(?:[ \t]*:?-{3,}:?[ \t]*\|?)+[ \t]*$`)
	heading      = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]*`)
	blockquote   = regexp.MustCompile(`(?m)^[ \t]*(?:>[ \t]?)+`)
	listBullet   = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+•]|\d{1,2}[.)])[ \t]+`)
	boldStar     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnder    = regexp.MustCompile(`__([^_]+)__`)
	italicStar   = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnder  = regexp.MustCompile(`(^|[\s(])_([^_\n]+)_([\s).,!?;:]|$)`)
	strike       = regexp.MustCompile(`~~([^~]+)~~`)
	strayStar    = regexp.MustCompile(`\*+`)
)

// StripCode removes fenced code blocks and unwraps inline code.
func StripCode(s string) string {
	s = fencedCode.ReplaceAllString(s, " ")
	s = strayFence.ReplaceAllString(s, " ")
	s = inlineCode.ReplaceAllString(s, "$1")
	return strayTick.ReplaceAllString(s, "")
}

// StripMarkdown flattens markdown into single-spaced plain text.
// Code blocks are dropped, links keep their label.
func StripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = StripCode(s)

	s = mdImage.ReplaceAllString(s, "$1")
	s = mdLink.ReplaceAllString(s, "$1")
	s = autoLink.ReplaceAllString(s, "$1")
	s = htmlTag.ReplaceAllString(s, " ")

	s = horizontal.ReplaceAllString(s, " ")
	s = tableDivider.ReplaceAllString(s, " ")
	s = heading.ReplaceAllString(s, "")
	s = blockquote.ReplaceAllString(s, "")
	s = listBullet.ReplaceAllString(s, "")

	s = boldStar.ReplaceAllString(s, "$1")
	s = boldUnder.ReplaceAllString(s, "$1")
	s = italicStar.ReplaceAllString(s, "$1")
	s = italicUnder.ReplaceAllString(s, "$1$2$3")
	s = strike.ReplaceAllString(s, "$1")
	s = strayStar.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "|", " ")

	return CollapseSpaces(s)
}
