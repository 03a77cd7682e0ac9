package models

import "github.com/shopspring/decimal"

// ReceiptData is what the vision model managed to read off a receipt photo.
// Every field is optional.
type ReceiptData struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Merchant *string          `json:"merchant,omitempty"`
	Category *string          `json:"category,omitempty"`
}
