package llm

import (
	"fmt"
	"strings"
)

// NewClient creates an LLM client for the configured provider.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "gemini":
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
