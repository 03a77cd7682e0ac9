// Package aggregate derives the dashboard and analytics views from the
// transaction, budget and asset collections. Every function is pure and
// recomputes from scratch.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"dream/internal/models"
)

// Summary is the headline income/expense/balance triple.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Add combines two summaries field by field.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		TotalIncome:  s.TotalIncome.Add(o.TotalIncome),
		TotalExpense: s.TotalExpense.Add(o.TotalExpense),
		Balance:      s.Balance.Add(o.Balance),
	}
}

// Summarize totals income and expense and derives the balance.
func Summarize(txns []models.Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryBreakdown sums expenses per top-level category, largest first.
// Ties keep first-seen order.
func CategoryBreakdown(txns []models.Transaction) []CategoryAmount {
	index := make(map[string]int)
	out := []CategoryAmount{}
	for _, t := range txns {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryAmount{Category: t.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// AssetTotal sums every asset balance. Balances may be negative.
func AssetTotal(assets []models.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Balance)
	}
	return total
}
