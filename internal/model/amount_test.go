package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "integer", input: "20", want: 2000},
		{name: "one decimal", input: "20.5", want: 2050},
		{name: "two decimals", input: "20.50", want: 2050},
		{name: "large", input: "1200", want: 120000},
		{name: "whitespace", input: " 45 ", want: 4500},
		{name: "too many decimals", input: "1.234", wantErr: true},
		{name: "not a number", input: "twenty", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "20.00", Amount(2000).String())
	assert.Equal(t, "20.50", Amount(2050).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "1200.00", Amount(120000).String())
}

// Formatting a persisted amount and re-parsing it must yield the same
// fixed-point value.
func TestAmountRoundTrip(t *testing.T) {
	for _, cents := range []Amount{1, 5, 99, 100, 2000, 2050, 120000, 999999} {
		parsed, err := ParseAmount(cents.String())
		require.NoError(t, err)
		assert.Equal(t, cents, parsed, "round trip of %s", cents)
	}
}

func TestAmountFromFloat(t *testing.T) {
	assert.Equal(t, Amount(2000), AmountFromFloat(20.0))
	assert.Equal(t, Amount(550), AmountFromFloat(5.50))
	// Values beyond two decimals round to the nearest cent.
	assert.Equal(t, Amount(1001), AmountFromFloat(10.006))
}
