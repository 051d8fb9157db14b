// Package model defines the core domain types shared across the application.
package model

import "strings"

// Category is one of the fixed expense categories. The set is closed:
// values arriving from any upstream source that are not in the set are
// coerced to CategoryOther, never rejected.
type Category string

const (
	// CategoryHousing covers rent, mortgage, home maintenance, furniture.
	CategoryHousing Category = "Housing"
	// CategoryTransportation covers gas, car payments, public transport, taxi, parking.
	CategoryTransportation Category = "Transportation"
	// CategoryFood covers restaurants, groceries, coffee, delivery, snacks.
	CategoryFood Category = "Food"
	// CategoryUtilities covers electricity, water, internet, phone bills.
	CategoryUtilities Category = "Utilities"
	// CategoryInsurance covers health, car, home, life insurance.
	CategoryInsurance Category = "Insurance"
	// CategoryMedical covers doctor visits, medicine, dental, health services.
	CategoryMedical Category = "Medical/Healthcare"
	// CategorySavings covers investments, savings accounts, retirement contributions.
	CategorySavings Category = "Savings"
	// CategoryDebt covers loan payments, credit card payments.
	CategoryDebt Category = "Debt"
	// CategoryEducation covers tuition, books, courses, training.
	CategoryEducation Category = "Education"
	// CategoryEntertainment covers movies, games, concerts, streaming, hobbies.
	CategoryEntertainment Category = "Entertainment"
	// CategoryOther is the universal fallback for anything that fits nowhere else.
	CategoryOther Category = "Other"
)

// categories lists every valid category in display order.
var categories = []Category{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryInsurance,
	CategoryMedical,
	CategorySavings,
	CategoryDebt,
	CategoryEducation,
	CategoryEntertainment,
	CategoryOther,
}

// Categories returns all valid categories. The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps an arbitrary string onto the category set.
// Matching is case-insensitive and ignores surrounding whitespace;
// anything unrecognized becomes CategoryOther.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOther
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
