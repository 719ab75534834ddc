package core

// SiteConfig is the first-party site configuration injected into the engine.
type SiteConfig struct {
	OwnerName  string       `yaml:"owner_name" json:"ownerName"`
	ContactURL string       `yaml:"contact_url" json:"contactUrl"`
	Features   FeatureFlags `yaml:"features" json:"features"`
	// FAQ is shown by clients only.
	FAQ []string `yaml:"faq" json:"faq"`
}

type FeatureFlags struct {
	RAGTriggerTopics []string `yaml:"rag_trigger_topics" json:"ragTriggerTopics"`
}
