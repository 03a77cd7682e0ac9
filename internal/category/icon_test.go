package category

import (
	"testing"

	"dream/internal/models"
)

func TestResolveIcon(t *testing.T) {
	trees := DefaultTrees()

	tests := []struct {
		name     string
		txType   models.TransactionType
		category string
		sub      *string
		want     string
	}{
		{"top_level", models.TransactionTypeExpense, "餐饮", nil, "Utensils"},
		{"immediate_child", models.TransactionTypeExpense, "餐饮", models.Ptr("零食"), "Cookie"},
		{"grandchild", models.TransactionTypeExpense, "交通", models.Ptr("停车"), "ParkingCircle"},
		{"middle_branch", models.TransactionTypeExpense, "交通", models.Ptr("长途旅行"), "Plane"},
		{"unknown_sub_falls_back_to_parent", models.TransactionTypeExpense, "居住", models.Ptr("别墅"), "Building2"},
		{"unknown_category", models.TransactionTypeExpense, "彩票", nil, FallbackIcon},
		{"income", models.TransactionTypeIncome, "工资", nil, "Banknote"},
		{"wrong_tree", models.TransactionTypeIncome, "餐饮", nil, FallbackIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trees.ResolveIcon(tt.txType, tt.category, tt.sub); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifies(t *testing.T) {
	trees := DefaultTrees()

	tests := []struct {
		name     string
		txType   models.TransactionType
		category string
		sub      *string
		want     bool
	}{
		{"top_level_only", models.TransactionTypeExpense, "餐饮", nil, true},
		{"child", models.TransactionTypeExpense, "餐饮", models.Ptr("零食"), true},
		{"grandchild", models.TransactionTypeExpense, "交通", models.Ptr("地铁"), true},
		{"middle_branch", models.TransactionTypeExpense, "交通", models.Ptr("公共交通"), true},
		{"income_leaf", models.TransactionTypeIncome, "工资", nil, true},
		{"unknown_category", models.TransactionTypeExpense, "不存在", nil, false},
		{"category_from_other_tree", models.TransactionTypeExpense, "工资", models.Ptr("地铁"), false},
		{"sub_under_wrong_parent", models.TransactionTypeExpense, "餐饮", models.Ptr("地铁"), false},
		{"sub_under_leaf", models.TransactionTypeIncome, "工资", models.Ptr("奖金"), false},
		{"sub_is_the_category", models.TransactionTypeExpense, "餐饮", models.Ptr("餐饮"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trees.Classifies(tt.txType, tt.category, tt.sub); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
