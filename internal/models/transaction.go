package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Label returns the display label used in advisor prompts and exports.
func (t TransactionType) Label() string {
	if t == TransactionTypeIncome {
		return "收入"
	}
	return "支出"
}

// Transaction is a single recorded money movement. Category and SubCategory
// hold display names, not node ids.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	SubCategory *string         `json:"sub_category,omitempty"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
}

// CategoryLabel joins category and sub-category as "cat-sub", or returns the
// bare category when there is no sub-category.
func (t Transaction) CategoryLabel() string {
	if t.SubCategory != nil && *t.SubCategory != "" {
		return t.Category + "-" + *t.SubCategory
	}
	return t.Category
}

// DisplayName is the most specific category name.
func (t Transaction) DisplayName() string {
	if t.SubCategory != nil && *t.SubCategory != "" {
		return *t.SubCategory
	}
	return t.Category
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
