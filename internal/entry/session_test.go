package entry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/category"
	"dream/internal/models"
	"dream/internal/testutil"
	"dream/internal/uuid"
)

var shanghai = time.FixedZone("CST", 8*3600)

func testNow() time.Time {
	return time.Date(2026, 3, 15, 19, 45, 0, 0, shanghai)
}

func assertPending(t *testing.T, s *Session, wantCat, wantSub *string) {
	t.Helper()
	cat, sub := s.Pending()
	if (cat == nil) != (wantCat == nil) || (cat != nil && *cat != *wantCat) {
		t.Errorf("expected pending category %v, got %v", str(wantCat), str(cat))
	}
	if (sub == nil) != (wantSub == nil) || (sub != nil && *sub != *wantSub) {
		t.Errorf("expected pending sub-category %v, got %v", str(wantSub), str(sub))
	}
}

func str(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func mustSelect(t *testing.T, s *Session, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := s.Select(id); err != nil {
			t.Fatalf("select %s: %v", id, err)
		}
	}
}

func TestNewSessionSubmit(t *testing.T) {
	trees := category.DefaultTrees()

	t.Run("drill_down_to_leaf", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		mustSelect(t, s, "transport", "public", "subway")
		s.SetAmount("4")

		txn, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertNoError(t, err)
		if txn.ID != "tx-1" || txn.Category != "交通" || str(txn.SubCategory) != "地铁" {
			t.Errorf("unexpected transaction %+v", txn)
		}
		if txn.Note != "交通-地铁" {
			t.Errorf("expected default note 交通-地铁, got %s", txn.Note)
		}
		if !txn.Date.Equal(testNow()) {
			t.Errorf("expected today's entry to keep the opening time, got %s", txn.Date)
		}
	})

	t.Run("top_level_leaf", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeIncome, testNow())
		mustSelect(t, s, "salary")
		s.SetAmount("12000")
		s.SetNote("  月薪 ")

		txn, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertNoError(t, err)
		if txn.Type != models.TransactionTypeIncome || txn.SubCategory != nil || txn.Note != "月薪" {
			t.Errorf("unexpected transaction %+v", txn)
		}
	})

	t.Run("branch_only", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		mustSelect(t, s, "food")
		s.SetAmount("30")

		txn, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertNoError(t, err)
		if txn.Category != "餐饮" || txn.SubCategory != nil || txn.Note != "餐饮" {
			t.Errorf("unexpected transaction %+v", txn)
		}
	})

	t.Run("past_day_is_midnight", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		mustSelect(t, s, "other")
		s.SetAmount("1")
		testutil.AssertNoError(t, s.SetDate("2026-03-01"))

		txn, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertNoError(t, err)
		if want := time.Date(2026, 3, 1, 0, 0, 0, 0, shanghai); !txn.Date.Equal(want) {
			t.Errorf("expected %s, got %s", want, txn.Date)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		if s.CanSubmit() {
			t.Error("blank form must not be submittable")
		}

		s.SetAmount("12")
		_, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertAppError(t, err, "CATEGORY_REQUIRED")

		mustSelect(t, s, "other")
		for _, bad := range []string{"", "abc", "-5"} {
			s.SetAmount(bad)
			_, err := s.Submit(uuid.Sequence("tx"))
			testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		}

		s.SetAmount("0")
		if !s.CanSubmit() {
			t.Error("zero amount is allowed")
		}
	})

	t.Run("bad_inputs", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		testutil.AssertAppError(t, s.Select("salary"), "UNKNOWN_CATEGORY_NODE")
		testutil.AssertAppError(t, s.SetDate("15/03/2026"), "INVALID_INPUT")
	})
}

func TestEditRestoresPendingPair(t *testing.T) {
	trees := category.DefaultTrees()
	now := testNow()

	cases := []struct {
		name     string
		txType   models.TransactionType
		category string
		sub      *string
		crumbs   int
	}{
		{"nested_leaf", models.TransactionTypeExpense, "交通", models.Ptr("地铁"), 1},
		{"direct_child", models.TransactionTypeExpense, "餐饮", models.Ptr("零食"), 1},
		{"branch_without_sub", models.TransactionTypeExpense, "居住", nil, 0},
		{"flat_income", models.TransactionTypeIncome, "工资", nil, 0},
		{"unknown_category", models.TransactionTypeExpense, "旧分类", models.Ptr("旧子类"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			original := models.Transaction{
				ID: "7", Amount: decimal.RequireFromString("9.9"), Type: tc.txType,
				Category: tc.category, SubCategory: tc.sub, Date: now.AddDate(0, 0, -3), Note: "n",
			}
			s := Edit("s1", trees, original, now)

			assertPending(t, s, models.Ptr(tc.category), tc.sub)
			if got := len(s.View().Breadcrumbs); got != tc.crumbs {
				t.Errorf("expected %d breadcrumbs, got %d", tc.crumbs, got)
			}

			txn, err := s.Submit(uuid.Sequence("new"))
			testutil.AssertNoError(t, err)
			if txn.ID != "7" || txn.Category != tc.category || str(txn.SubCategory) != str(tc.sub) {
				t.Errorf("unexpected resubmission %+v", txn)
			}
			if !txn.Date.Equal(original.Date) {
				t.Errorf("expected original timestamp kept, got %s", txn.Date)
			}
		})
	}
}

func TestEditBrowsingKeepsClassification(t *testing.T) {
	trees := category.DefaultTrees()
	original := models.Transaction{
		ID: "1", Amount: decimal.RequireFromString("2500"), Type: models.TransactionTypeExpense,
		Category: "居住", SubCategory: models.Ptr("房租"), Date: testNow(), Note: "房租",
	}

	t.Run("ascend_without_select", func(t *testing.T) {
		s := Edit("s1", trees, original, testNow())
		s.Ascend()
		if len(s.View().Breadcrumbs) != 0 {
			t.Fatal("expected top level after ascend")
		}
		assertPending(t, s, models.Ptr("居住"), models.Ptr("房租"))

		txn, err := s.Submit(uuid.Sequence("tx"))
		testutil.AssertNoError(t, err)
		if txn.Category != "居住" || str(txn.SubCategory) != "房租" {
			t.Errorf("expected old classification kept, got %+v", txn)
		}
	})

	t.Run("new_select_overwrites", func(t *testing.T) {
		s := Edit("s1", trees, original, testNow())
		s.Ascend()
		mustSelect(t, s, "food", "dinner")
		assertPending(t, s, models.Ptr("餐饮"), models.Ptr("晚餐"))
	})

	t.Run("same_type_switch_is_noop", func(t *testing.T) {
		s := Edit("s1", trees, original, testNow())
		s.SwitchType(models.TransactionTypeExpense)
		assertPending(t, s, models.Ptr("居住"), models.Ptr("房租"))
		if len(s.View().Breadcrumbs) != 1 {
			t.Error("expected restored view kept")
		}
	})

	t.Run("type_switch_resets", func(t *testing.T) {
		s := Edit("s1", trees, original, testNow())
		s.SwitchType(models.TransactionTypeIncome)
		assertPending(t, s, nil, nil)

		s.SwitchType(models.TransactionTypeExpense)
		assertPending(t, s, nil, nil)
		if s.CanSubmit() {
			t.Error("expected a fresh category choice to be required")
		}
	})
}

func TestApplyReceipt(t *testing.T) {
	trees := category.DefaultTrees()

	t.Run("known_category", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeIncome, testNow())
		amount := decimal.RequireFromString("36.50")
		s.ApplyReceipt(models.ReceiptData{
			Amount:   &amount,
			Date:     models.Ptr("2026-03-14"),
			Merchant: models.Ptr("全家"),
			Category: models.Ptr("餐饮"),
		})

		v := s.View()
		if v.Type != models.TransactionTypeExpense || v.Amount != "36.5" || v.Date != "2026-03-14" || v.Note != "全家" {
			t.Errorf("unexpected view %+v", v)
		}
		assertPending(t, s, models.Ptr("餐饮"), nil)
		if !v.CanSubmit {
			t.Error("expected receipt to make the form submittable")
		}
	})

	t.Run("unknown_category_ignored", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeIncome, testNow())
		s.ApplyReceipt(models.ReceiptData{Category: models.Ptr("Groceries"), Date: models.Ptr("garbage")})

		if s.Type() != models.TransactionTypeIncome {
			t.Error("type must not change for an unknown category")
		}
		assertPending(t, s, nil, nil)
		if s.View().Date != "2026-03-15" {
			t.Error("unparseable date must be ignored")
		}
	})

	t.Run("replaces_sub_category", func(t *testing.T) {
		s := New("s1", trees, models.TransactionTypeExpense, testNow())
		mustSelect(t, s, "food", "lunch")
		s.ApplyReceipt(models.ReceiptData{Category: models.Ptr("购物")})
		assertPending(t, s, models.Ptr("购物"), nil)
	})
}

func TestView(t *testing.T) {
	s := New("s1", category.DefaultTrees(), models.TransactionTypeExpense, testNow())
	mustSelect(t, s, "transport", "public", "bus")

	v := s.View()
	if len(v.Breadcrumbs) != 2 || v.Breadcrumbs[1].ID != "public" {
		t.Fatalf("unexpected breadcrumbs %+v", v.Breadcrumbs)
	}
	if len(v.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(v.Nodes))
	}
	if v.Nodes[0].Selected || !v.Nodes[1].Selected {
		t.Errorf("expected only 公交 selected, got %+v", v.Nodes)
	}
	if v.Editing || v.TransactionID != nil {
		t.Error("new session must not be editing")
	}
}
