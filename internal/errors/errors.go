// Package errors provides custom error types for the Dream ledger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid passcode", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Entry errors. Submissions without a category or with an unusable amount
// are rejected before anything is saved.
var (
	ErrCategoryRequired = &AppError{Code: "CATEGORY_REQUIRED", Message: "A category must be chosen", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidAmount    = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a non-negative number", StatusCode: http.StatusUnprocessableEntity}
	ErrSessionNotFound  = &AppError{Code: "SESSION_NOT_FOUND", Message: "Entry session not found or expired", StatusCode: http.StatusNotFound}
	ErrUnknownNode      = &AppError{Code: "UNKNOWN_CATEGORY_NODE", Message: "Category node is not visible", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrAssetNotFound       = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrUnknownCategory     = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Category is not a top-level expense category", StatusCode: http.StatusBadRequest}
)

// Advisor errors.
var (
	ErrReceiptUnreadable  = &AppError{Code: "RECEIPT_UNREADABLE", Message: "无法识别收据，请重试或手动输入。", StatusCode: http.StatusUnprocessableEntity}
	ErrAdvisorUnavailable = &AppError{Code: "ADVISOR_UNAVAILABLE", Message: "The advisor is not configured", StatusCode: http.StatusServiceUnavailable}
)
