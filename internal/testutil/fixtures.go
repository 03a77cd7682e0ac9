package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal fixture %q: %v", s, err)
	}
	return d
}

// NewExpense builds an expense with a unique id.
func NewExpense(t *testing.T, amount, category string, sub *string, date time.Time) models.Transaction {
	t.Helper()
	return models.Transaction{
		ID:          fmt.Sprintf("tx-%d", nextID()),
		Amount:      Amount(t, amount),
		Type:        models.TransactionTypeExpense,
		Category:    category,
		SubCategory: sub,
		Date:        date,
		Note:        category,
	}
}

// NewIncome builds an income with a unique id.
func NewIncome(t *testing.T, amount, category string, date time.Time) models.Transaction {
	t.Helper()
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", nextID()),
		Amount:   Amount(t, amount),
		Type:     models.TransactionTypeIncome,
		Category: category,
		Date:     date,
		Note:     category,
	}
}

// NewAsset builds an asset with a unique id.
func NewAsset(t *testing.T, name string, assetType models.AssetType, balance string) models.Asset {
	t.Helper()
	return models.Asset{
		ID:      fmt.Sprintf("asset-%d", nextID()),
		Name:    name,
		Type:    assetType,
		Balance: Amount(t, balance),
	}
}

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
