package services

import (
	"context"
	"testing"

	"dream/internal/aggregate"
	"dream/internal/category"
	"dream/internal/models"
	"dream/internal/testutil"
)

func TestAnalyticsService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledgerSvc, _ := newTestLedger(t, db, nil)
	svc := NewAnalyticsService(ledgerSvc, category.DefaultTrees(), testutil.FixedClock(testNow()))

	_, err := ledgerSvc.UpsertBudget(context.Background(), models.Budget{Category: "居住", Limit: testutil.Amount(t, "3000")})
	testutil.AssertNoError(t, err)

	t.Run("summary", func(t *testing.T) {
		s := svc.Summary()
		testutil.AssertDecimal(t, "income", s.TotalIncome, "12000")
		testutil.AssertDecimal(t, "expense", s.TotalExpense, "2554.20")
		testutil.AssertDecimal(t, "balance", s.Balance, "9445.80")
	})

	t.Run("days_newest_first", func(t *testing.T) {
		days := svc.Days()
		if len(days) != 3 {
			t.Fatalf("expected 3 day groups, got %d", len(days))
		}
		if days[0].Title != "昨天" {
			t.Errorf("expected first group titled 昨天, got %q", days[0].Title)
		}
	})

	t.Run("budget_progress_current_month", func(t *testing.T) {
		lines := svc.BudgetProgress(0, 0, false)
		byCategory := make(map[string]aggregate.BudgetLine, len(lines))
		for _, l := range lines {
			byCategory[l.Category] = l
		}
		housing, ok := byCategory["居住"]
		if !ok {
			t.Fatalf("expected a 居住 line, got %+v", lines)
		}
		testutil.AssertDecimal(t, "spent", housing.Spent, "2500")
		if housing.Status != aggregate.BudgetStatusWarning {
			t.Errorf("expected warning status, got %q", housing.Status)
		}
		food := byCategory["餐饮"]
		if food.Status != aggregate.BudgetStatusUnset {
			t.Errorf("expected unset status for 餐饮, got %q", food.Status)
		}
	})

	t.Run("budget_progress_include_zero", func(t *testing.T) {
		lines := svc.BudgetProgress(2025, 1, true)
		if len(lines) != len(category.DefaultTrees().Expense) {
			t.Errorf("expected one line per expense category, got %d", len(lines))
		}
	})

	t.Run("daily_series", func(t *testing.T) {
		series := svc.DailySeries(7)
		if len(series) != 7 {
			t.Fatalf("expected 7 points, got %d", len(series))
		}
		testutil.AssertDecimal(t, "yesterday", series[5].Total, "54.20")
		testutil.AssertDecimal(t, "today", series[6].Total, "0")
	})

	t.Run("category_breakdown", func(t *testing.T) {
		breakdown := svc.CategoryBreakdown()
		if len(breakdown) != 2 || breakdown[0].Category != "居住" {
			t.Errorf("expected 居住 first of 2, got %+v", breakdown)
		}
	})

	t.Run("asset_total", func(t *testing.T) {
		testutil.AssertDecimal(t, "total", svc.AssetTotal(), "31680.50")
	})
}
