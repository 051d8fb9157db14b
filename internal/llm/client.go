// Package llm provides clients for the language-model extraction collaborator.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	Extract(ctx context.Context, prompt string) (ExtractionResponse, error)
}

// ExtractionResponse is the structured-output schema the model is asked
// to fill in. Optional fields are pointers so a missing field can be told
// apart from a zero value; the response is never trusted before Validate.
type ExtractionResponse struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	IsExpense   bool     `json:"is_expense"`
}

// Validate performs basic shape validation. A response claiming an
// expense must carry a positive numeric amount; anything else is an
// engine-level failure the caller routes to the fallback extractor.
func (r ExtractionResponse) Validate() error {
	if !r.IsExpense {
		return nil
	}
	if r.Amount == nil {
		return fmt.Errorf("response missing amount")
	}
	if *r.Amount <= 0 {
		return fmt.Errorf("response amount %v is not positive", *r.Amount)
	}
	if r.Category == nil {
		return fmt.Errorf("response missing category")
	}
	return nil
}

// Config holds configuration for the LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPTimeout time.Duration
}
