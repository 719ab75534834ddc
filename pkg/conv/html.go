package conv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/inbucket/html2text"
)

// HTMLToText flattens an HTML page into readable plain text. Links are omitted.
func HTMLToText(page []byte) (string, error) {
	text, err := html2text.FromReader(bytes.NewReader(page), html2text.Options{
		OmitLinks:    true,
		PrettyTables: false,
	})
	if err != nil {
		return "", fmt.Errorf("html to text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
