// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"dream/internal/models"
)

const dayLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("asset_type", validateAssetType)
	_ = v.RegisterValidation("day_date", validateDayDate)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).IsValid()
}

func validateDayDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dayLayout, fl.Field().String())
	return err == nil
}

// validateDecimalAmount accepts a non-negative decimal string.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}
