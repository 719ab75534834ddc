package core

import "strings"

const (
	AgentName      = "Sensei"
	AgentUserAgent = "Sensei-Portfolio/0.1"
	AgentVersion   = "0.1.0"
)

// SourceConfig marks documents derived from first-party site content.
// Only these are trusted by the identity, bio, skills and certification answers.
const SourceConfig = "config"

type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

func (d Document) IsConfig() bool {
	return d.Source == SourceConfig
}

func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// Text is the searchable body of the document.
func (d Document) Text() string {
	return d.Title + " " + d.Content
}

type ScoredDocument struct {
	Document
	Score float64
	// Index is the position in the corpus, used as a stable tie-break.
	Index int
}

type RetrievalResult struct {
	Context string
	Sources []string
}

func (r RetrievalResult) IsEmpty() bool {
	return strings.TrimSpace(r.Context) == ""
}

type ChatRequest struct {
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	// Language optionally overrides detection ("en", "fr").
	Language string `json:"language,omitempty"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Region  string `json:"region"`
	ModelID string `json:"modelId"`
	Bucket  string `json:"bucket"`
	Prefix  string `json:"prefix"`
	Time    string `json:"time"`
}
