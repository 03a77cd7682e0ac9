package models

import "github.com/shopspring/decimal"

// Budget is a monthly spending cap for one top-level expense category.
// At most one budget exists per category.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}
