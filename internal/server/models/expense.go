package models

import (
	"strings"
	"time"
)

const DefaultCurrency = "USD"

// Expense categories.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryHealth        = "health"
	CategoryBills         = "bills"
	CategoryOther         = "other"
)

var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryBills,
	CategoryOther,
}

// NormalizeCategory lower-cases c and reports whether it is a known category.
// An empty category becomes CategoryOther.
func NormalizeCategory(c string) (string, bool) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return CategoryOther, true
	}
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}
