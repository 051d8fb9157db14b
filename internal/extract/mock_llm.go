package extract

import (
	"context"
	"sync"

	"github.com/mwrites/ledgerbot/internal/llm"
)

// MockClient is a test implementation of the llm.Client interface.
// It returns a canned response or error and records every call.
type MockClient struct {
	Err      error
	Response llm.ExtractionResponse
	Delay    func(ctx context.Context) error
	prompts  []string
	mu       sync.Mutex
}

// NewMockClient creates a mock client returning the given response.
func NewMockClient(response llm.ExtractionResponse) *MockClient {
	return &MockClient{Response: response}
}

// Extract records the call and returns the configured result.
func (m *MockClient) Extract(ctx context.Context, prompt string) (llm.ExtractionResponse, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Delay != nil {
		if err := m.Delay(ctx); err != nil {
			return llm.ExtractionResponse{}, err
		}
	}

	if m.Err != nil {
		return llm.ExtractionResponse{}, m.Err
	}
	return m.Response, nil
}

// Calls returns how many times Extract was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
