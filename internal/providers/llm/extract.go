package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNoText = errors.New("no generated text in response")

// textPaths are tried in order. A numeric segment indexes into an array.
var textPaths = [][]string{
	{"generation"},
	{"outputText"},
	{"completion"},
	{"generated_text"},
	{"text"},
	{"response"},
	{"output"},
	{"results", "0", "outputText"},
	{"outputs", "0", "text"},
	{"choices", "0", "text"},
	{"choices", "0", "message", "content"},
	{"content", "0", "text"},
	{"0", "generated_text"},
}

// ExtractText pulls the generated string out of a provider response body.
// It returns ErrNoText when no known field holds a non-empty string.
func ExtractText(body []byte) (string, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	for _, path := range textPaths {
		if s, ok := lookup(doc, path).(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), nil
		}
	}
	return "", ErrNoText
}

func lookup(v any, path []string) any {
	for _, seg := range path {
		switch node := v.(type) {
		case map[string]any:
			v = node[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			v = node[i]
		default:
			return nil
		}
	}
	return v
}
