package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a fixed-point monetary value stored as cents.
// Formatting and re-parsing an Amount always yields the same value,
// which float64 cannot guarantee.
type Amount int64

// ParseAmount parses a decimal string like "20", "20.5" or "20.50"
// into an Amount. At most two fractional digits are accepted.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := int64(0)
	if frac != "" {
		c, cErr := strconv.ParseInt(frac, 10, 64)
		if cErr != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, cErr)
		}
		if len(frac) == 1 {
			c *= 10
		}
		cents = c
	}

	if units < 0 {
		return Amount(units*100 - cents), nil
	}
	return Amount(units*100 + cents), nil
}

// AmountFromFloat converts a float amount (as returned by the extraction
// collaborator) to fixed-point cents, rounding half away from zero.
func AmountFromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float64 returns the amount in units, for wire formats that expect a number.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with exactly two decimal places, e.g. "20.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
