package services

import (
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/aggregate"
	"dream/internal/category"
)

// analyticsService derives read-only views from the current ledger snapshot.
type analyticsService struct {
	ledger LedgerServicer
	trees  category.Trees
	now    Clock
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(ledger LedgerServicer, trees category.Trees, now Clock) AnalyticsServicer {
	return &analyticsService{ledger: ledger, trees: trees, now: now}
}

func (s *analyticsService) Summary() aggregate.Summary {
	return aggregate.Summarize(s.ledger.Snapshot().Transactions)
}

func (s *analyticsService) Days() []aggregate.DayGroup {
	return aggregate.GroupByDay(s.ledger.Snapshot().Transactions, s.now())
}

// BudgetProgress reports spending against each expense category's limit for
// the given month. A zero year or month means the current one.
func (s *analyticsService) BudgetProgress(year int, month time.Month, includeZero bool) []aggregate.BudgetLine {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	ref := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	state := s.ledger.Snapshot()
	return aggregate.BudgetProgress(state.Transactions, state.Budgets, s.trees.Expense.Names(), ref, includeZero)
}

func (s *analyticsService) DailySeries(days int) []aggregate.DayPoint {
	return aggregate.DailySeries(s.ledger.Snapshot().Transactions, days, s.now())
}

func (s *analyticsService) CategoryBreakdown() []aggregate.CategoryAmount {
	return aggregate.CategoryBreakdown(s.ledger.Snapshot().Transactions)
}

func (s *analyticsService) AssetTotal() decimal.Decimal {
	return aggregate.AssetTotal(s.ledger.Snapshot().Assets)
}
