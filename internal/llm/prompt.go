package llm

import (
	"fmt"
	"strings"

	"github.com/mwrites/ledgerbot/internal/model"
)

// categoryExamples gives the model concrete anchors for each category.
var categoryExamples = map[model.Category]string{
	model.CategoryHousing:        "rent, mortgage, home maintenance, furniture",
	model.CategoryTransportation: "gas, car payments, public transport, taxi, parking",
	model.CategoryFood:           "restaurants, groceries, coffee, delivery, snacks",
	model.CategoryUtilities:      "electricity, water, internet, phone bills",
	model.CategoryInsurance:      "health, car, home, life insurance",
	model.CategoryMedical:        "doctor visits, medicine, dental, health services",
	model.CategorySavings:        "investments, savings accounts, retirement contributions",
	model.CategoryDebt:           "loan payments, credit card payments",
	model.CategoryEducation:      "tuition, books, courses, training",
	model.CategoryEntertainment:  "movies, games, concerts, streaming services, hobbies",
	model.CategoryOther:          "anything that doesn't fit the above categories",
}

// BuildPrompt creates the extraction prompt for a single message.
func BuildPrompt(message string) string {
	var categoryList strings.Builder
	for _, cat := range model.Categories() {
		fmt.Fprintf(&categoryList, "- %s: %s\n", cat, categoryExamples[cat])
	}

	return fmt.Sprintf(`You are an expert expense categorization assistant. Analyze the message to determine whether it describes an expense and categorize it.

Available categories:
%s
Instructions:
1. Determine if the message describes an expense (purchase, payment, cost)
2. Extract a clean description of what was purchased/paid for
3. Extract the numeric amount (convert words like "twenty" to numbers)
4. Choose the most appropriate category

Examples:
- "Pizza 20 bucks" -> {"is_expense": true, "description": "Pizza", "amount": 20.0, "category": "Food"}
- "Gas station $45" -> {"is_expense": true, "description": "Gas", "amount": 45.0, "category": "Transportation"}
- "Rent payment 1200" -> {"is_expense": true, "description": "Rent payment", "amount": 1200.0, "category": "Housing"}
- "Hello there" -> {"is_expense": false, "description": null, "amount": null, "category": null}

Respond with a single JSON object with keys is_expense (boolean), description (string or null), amount (number or null) and category (string or null).

Now analyze this message: %s`, categoryList.String(), message)
}
