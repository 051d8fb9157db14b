package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseExtraction decodes the model's JSON content into an
// ExtractionResponse. Shape validation happens in the engine, not here;
// this only rejects content that is not the expected JSON object at all.
func parseExtraction(content string) (ExtractionResponse, error) {
	content = cleanMarkdownWrapper(content)

	var resp ExtractionResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return ExtractionResponse{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return resp, nil
}

// cleanMarkdownWrapper strips a ```json fence some models wrap around
// their output despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}
