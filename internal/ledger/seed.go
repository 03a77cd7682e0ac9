package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/models"
)

// SeedTransactions is the sample ledger shown before anything was saved.
// Dates are relative to now.
func SeedTransactions(now time.Time) []models.Transaction {
	return []models.Transaction{
		{
			ID:          "1",
			Amount:      decimal.RequireFromString("2500.00"),
			Type:        models.TransactionTypeExpense,
			Category:    "居住",
			SubCategory: models.Ptr("房租"),
			Date:        now.AddDate(0, 0, -2),
			Note:        "房租",
		},
		{
			ID:          "2",
			Amount:      decimal.RequireFromString("54.20"),
			Type:        models.TransactionTypeExpense,
			Category:    "餐饮",
			SubCategory: models.Ptr("零食"),
			Date:        now.AddDate(0, 0, -1),
			Note:        "超市购物",
		},
		{
			ID:       "3",
			Amount:   decimal.RequireFromString("12000.00"),
			Type:     models.TransactionTypeIncome,
			Category: "工资",
			Date:     now.AddDate(0, 0, -5),
			Note:     "月薪",
		},
	}
}

// SeedAssets is the sample set of accounts.
func SeedAssets() []models.Asset {
	return []models.Asset{
		{ID: "1", Name: "微信钱包", Type: models.AssetTypeWechat, Balance: decimal.RequireFromString("1250.50")},
		{ID: "2", Name: "支付宝", Type: models.AssetTypeAlipay, Balance: decimal.RequireFromString("5430.00")},
		{ID: "3", Name: "招商银行", Type: models.AssetTypeBank, Balance: decimal.RequireFromString("25000.00"), AccountNumber: models.Ptr("8888")},
	}
}
