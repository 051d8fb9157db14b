// Package extract converts free-form chat text into structured expense
// candidates, AI-first with a deterministic fallback.
package extract

import (
	"regexp"
	"strings"

	"github.com/mwrites/ledgerbot/internal/model"
)

// amountPatterns are tried in order; symbol-prefixed and word-suffixed
// quantities win over a bare number so "2 pizzas for $30" keeps the 30.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:[.,]\d{1,2})?)`),
	regexp.MustCompile(`(?i)(\d+(?:[.,]\d{1,2})?)\s*(?:dollars?|bucks?|usd)\b`),
	regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)`),
}

// categoryKeywords is the static keyword lookup used when no AI result
// is available. First match wins, scanning categories in enum order.
var categoryKeywords = map[model.Category][]string{
	model.CategoryHousing:        {"rent", "mortgage", "furniture", "apartment"},
	model.CategoryTransportation: {"gas", "fuel", "taxi", "uber", "bus", "train", "parking"},
	model.CategoryFood:           {"pizza", "grocery", "groceries", "restaurant", "coffee", "lunch", "dinner", "breakfast", "food", "snack", "burger"},
	model.CategoryUtilities:      {"electricity", "internet", "water bill", "phone bill"},
	model.CategoryInsurance:      {"insurance"},
	model.CategoryMedical:        {"doctor", "medicine", "pharmacy", "dental", "hospital"},
	model.CategorySavings:        {"savings", "investment", "deposit"},
	model.CategoryDebt:           {"loan", "credit card", "debt"},
	model.CategoryEducation:      {"tuition", "course", "textbook", "school"},
	model.CategoryEntertainment:  {"movie", "cinema", "netflix", "spotify", "concert", "game"},
}

// fallbackDescription substitutes for a description when stripping the
// amount leaves nothing behind.
const fallbackDescription = "Expense"

// Fallback deterministically parses text into an extraction result
// without any I/O. It is used whenever the AI collaborator is
// unavailable or returns an unusable result.
func Fallback(text string) model.ExtractionResult {
	loc := findAmount(text)
	if loc == nil {
		return model.ExtractionResult{IsExpense: false, Source: model.SourceFallback}
	}

	numeric := text[loc[2]:loc[3]]
	amount, err := model.ParseAmount(strings.ReplaceAll(numeric, ",", "."))
	if err != nil || amount <= 0 {
		return model.ExtractionResult{IsExpense: false, Source: model.SourceFallback}
	}

	// Drop the whole matched token (symbol and currency word included)
	// and collapse the surrounding whitespace.
	description := strings.Join(strings.Fields(text[:loc[0]]+" "+text[loc[1]:]), " ")
	if description == "" {
		description = fallbackDescription
	}

	return model.ExtractionResult{
		IsExpense:   true,
		Description: description,
		Amount:      amount,
		Category:    classify(text),
		Source:      model.SourceFallback,
	}
}

// findAmount returns the submatch indexes of the first pattern that hits.
func findAmount(text string) []int {
	for _, re := range amountPatterns {
		if loc := re.FindStringSubmatchIndex(text); loc != nil {
			return loc
		}
	}
	return nil
}

// classify picks a category from the keyword table, defaulting to Other.
func classify(text string) model.Category {
	lower := strings.ToLower(text)
	for _, cat := range model.Categories() {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return model.CategoryOther
}
