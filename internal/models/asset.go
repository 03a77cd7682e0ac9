package models

import "github.com/shopspring/decimal"

// AssetType identifies where a balance is held.
type AssetType string

const (
	AssetTypeWechat AssetType = "wechat"
	AssetTypeAlipay AssetType = "alipay"
	AssetTypeBank   AssetType = "bank"
	AssetTypeCash   AssetType = "cash"
	AssetTypeOther  AssetType = "other"
)

// IsValid reports whether t is one of the known asset types.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeWechat, AssetTypeAlipay, AssetTypeBank, AssetTypeCash, AssetTypeOther:
		return true
	}
	return false
}

// Asset is an account balance shown on the profile view.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          AssetType       `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	AccountNumber *string         `json:"account_number,omitempty"`
}
