package services

import (
	"testing"

	"dream/internal/category"
	"dream/internal/models"
)

func TestCategoryService(t *testing.T) {
	svc := NewCategoryService(category.DefaultTrees())

	t.Run("names", func(t *testing.T) {
		names := svc.Names(models.TransactionTypeIncome)
		if len(names) == 0 || names[0] != "工资" {
			t.Errorf("unexpected income names %v", names)
		}
	})

	t.Run("tree_by_type", func(t *testing.T) {
		if _, ok := svc.Tree(models.TransactionTypeExpense).Find("交通"); !ok {
			t.Error("expected 交通 in the expense tree")
		}
	})

	t.Run("resolve_icon", func(t *testing.T) {
		if icon := svc.ResolveIcon(models.TransactionTypeExpense, "交通", models.Ptr("地铁")); icon != "Train" {
			t.Errorf("expected Train, got %q", icon)
		}
		if icon := svc.ResolveIcon(models.TransactionTypeExpense, "彩票", nil); icon != category.FallbackIcon {
			t.Errorf("expected fallback icon, got %q", icon)
		}
	})
}
