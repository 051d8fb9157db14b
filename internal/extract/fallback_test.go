package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwrites/ledgerbot/internal/model"
)

func TestFallbackFindsExpenses(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantDescription string
		wantCategory    model.Category
		wantAmount      model.Amount
	}{
		{
			name:            "dollar sign",
			text:            "Pizza $20",
			wantAmount:      2000,
			wantDescription: "Pizza",
			wantCategory:    model.CategoryFood,
		},
		{
			name:            "currency word",
			text:            "Gas station 45 dollars",
			wantAmount:      4500,
			wantDescription: "Gas station",
			wantCategory:    model.CategoryTransportation,
		},
		{
			name:            "bare number",
			text:            "Rent payment 1200",
			wantAmount:      120000,
			wantDescription: "Rent payment",
			wantCategory:    model.CategoryHousing,
		},
		{
			name:            "bucks",
			text:            "coffee 5 bucks",
			wantAmount:      500,
			wantDescription: "coffee",
			wantCategory:    model.CategoryFood,
		},
		{
			name:            "decimal amount",
			text:            "taxi $12.50 home",
			wantAmount:      1250,
			wantDescription: "taxi home",
			wantCategory:    model.CategoryTransportation,
		},
		{
			name:            "no keyword goes to Other",
			text:            "mystery thing $7",
			wantAmount:      700,
			wantDescription: "mystery thing",
			wantCategory:    model.CategoryOther,
		},
		{
			name:            "amount only gets placeholder description",
			text:            "$30",
			wantAmount:      3000,
			wantDescription: "Expense",
			wantCategory:    model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.text)
			assert.True(t, got.IsExpense)
			assert.Equal(t, model.SourceFallback, got.Source)
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantDescription, got.Description)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

func TestFallbackRejectsNonExpenses(t *testing.T) {
	for _, text := range []string{
		"Hello there",
		"how are you?",
		"",
		"zero $0",
	} {
		t.Run(text, func(t *testing.T) {
			got := Fallback(text)
			assert.False(t, got.IsExpense)
			assert.Equal(t, model.SourceFallback, got.Source)
		})
	}
}

func TestFallbackPrefersTaggedAmount(t *testing.T) {
	// The symbol-tagged quantity wins over the leading bare number.
	got := Fallback("2 pizzas for $30")
	assert.True(t, got.IsExpense)
	assert.Equal(t, model.Amount(3000), got.Amount)
	assert.Equal(t, "2 pizzas for", got.Description)
	assert.Equal(t, model.CategoryFood, got.Category)
}
