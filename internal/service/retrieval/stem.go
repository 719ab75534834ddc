package retrieval

import "strings"

type suffixRule struct {
	suffix  string
	replace string
}

// Ordered longest first; the first matching rule wins.
var suffixRules = []suffixRule{
	{"ications", ""},
	{"ication", ""},
	{"icates", ""},
	{"ations", ""},
	{"icate", ""},
	{"ation", ""},
	{"ified", "if"},
	{"ifies", "if"},
	{"ments", ""},
	{"ment", ""},
	{"ings", ""},
	{"ing", ""},
	{"ies", "y"},
	{"ify", "if"},
	{"ers", ""},
	{"er", ""},
	{"ed", ""},
	{"ly", ""},
	{"sses", "ss"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"xes", "x"},
	{"s", ""},
}

const minStemLen = 3

// Stem is a light suffix stripper: it maps "certified", "certify" and
// "certifications" to the same root. It is not a linguistic stemmer.
func Stem(token string) string {
	for _, r := range suffixRules {
		if !strings.HasSuffix(token, r.suffix) {
			continue
		}
		if r.suffix == "s" && strings.HasSuffix(token, "ss") {
			return token
		}
		base := token[:len(token)-len(r.suffix)]
		if len(base)+len(r.replace) < minStemLen {
			return token
		}
		return base + r.replace
	}
	return token
}
