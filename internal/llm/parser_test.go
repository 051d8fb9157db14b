package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	content := `{"is_expense": true, "description": "Pizza", "amount": 20, "category": "Food"}`

	resp, err := parseExtraction(content)
	require.NoError(t, err)
	assert.True(t, resp.IsExpense)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "Pizza", *resp.Description)
	require.NotNil(t, resp.Amount)
	assert.Equal(t, 20.0, *resp.Amount)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "Food", *resp.Category)
}

func TestParseExtractionMissingFields(t *testing.T) {
	resp, err := parseExtraction(`{"is_expense": false}`)
	require.NoError(t, err)
	assert.False(t, resp.IsExpense)
	assert.Nil(t, resp.Description)
	assert.Nil(t, resp.Amount)
	assert.Nil(t, resp.Category)
}

func TestParseExtractionMarkdownFence(t *testing.T) {
	content := "```json\n{\"is_expense\": true, \"description\": \"Taxi\", \"amount\": 12.5, \"category\": \"Transportation\"}\n```"

	resp, err := parseExtraction(content)
	require.NoError(t, err)
	assert.True(t, resp.IsExpense)
	require.NotNil(t, resp.Amount)
	assert.Equal(t, 12.5, *resp.Amount)
}

func TestParseExtractionInvalidJSON(t *testing.T) {
	for _, content := range []string{
		"",
		"sure, here's the JSON you asked for",
		"{truncated",
	} {
		_, err := parseExtraction(content)
		assert.Error(t, err, "content %q", content)
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", input: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}

func TestExtractionResponseValidate(t *testing.T) {
	amount := 20.0
	zero := 0.0
	desc := "Pizza"
	cat := "Food"

	tests := []struct {
		name    string
		resp    ExtractionResponse
		wantErr bool
	}{
		{
			name: "valid expense",
			resp: ExtractionResponse{IsExpense: true, Description: &desc, Amount: &amount, Category: &cat},
		},
		{
			name: "not an expense needs nothing else",
			resp: ExtractionResponse{IsExpense: false},
		},
		{
			name:    "expense without amount",
			resp:    ExtractionResponse{IsExpense: true, Description: &desc, Category: &cat},
			wantErr: true,
		},
		{
			name:    "expense with zero amount",
			resp:    ExtractionResponse{IsExpense: true, Description: &desc, Amount: &zero, Category: &cat},
			wantErr: true,
		},
		{
			name:    "expense without category",
			resp:    ExtractionResponse{IsExpense: true, Description: &desc, Amount: &amount},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
