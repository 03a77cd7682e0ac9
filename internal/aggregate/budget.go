package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/models"
)

// BudgetStatus classifies how far spend has progressed against its limit.
type BudgetStatus string

const (
	BudgetStatusUnset   BudgetStatus = "unset"
	BudgetStatusNormal  BudgetStatus = "normal"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// BudgetLine is the month's progress for one expense category.
type BudgetLine struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	Percent  decimal.Decimal `json:"percent"`
	Status   BudgetStatus    `json:"status"`
}

// BudgetProgress compares each category's expense total for the month of ref
// (in ref's location) against its budget. Sub-category spend rolls up into the
// top-level category and a missing budget counts as a zero limit. Unless
// includeZero is set, rows with neither a limit nor any spend are dropped.
func BudgetProgress(txns []models.Transaction, budgets []models.Budget, categories []string, ref time.Time, includeZero bool) []BudgetLine {
	loc := ref.Location()
	year, month, _ := ref.Date()

	spent := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		y, m, _ := t.Date.In(loc).Date()
		if y != year || m != month {
			continue
		}
		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.Limit
	}

	lines := []BudgetLine{}
	for _, cat := range categories {
		line := NewBudgetLine(cat, spent[cat], limits[cat])
		if includeZero || line.Limit.IsPositive() || line.Spent.IsPositive() {
			lines = append(lines, line)
		}
	}
	return lines
}

// NewBudgetLine computes percent and status for a spent/limit pair.
func NewBudgetLine(category string, spent, limit decimal.Decimal) BudgetLine {
	line := BudgetLine{
		Category: category,
		Spent:    spent,
		Limit:    limit,
		Percent:  decimal.Zero,
		Status:   BudgetStatusUnset,
	}
	if !limit.IsPositive() {
		return line
	}
	line.Percent = spent.Div(limit).Mul(hundred)
	switch {
	case line.Percent.GreaterThan(hundred):
		line.Status = BudgetStatusOver
	case line.Percent.GreaterThan(warningThreshold):
		line.Status = BudgetStatusWarning
	default:
		line.Status = BudgetStatusNormal
	}
	return line
}
