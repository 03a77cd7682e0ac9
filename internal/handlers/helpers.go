package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/models"
)

const dayLayout = "2006-01-02"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parseFlexibleTime accepts RFC3339 or a bare YYYY-MM-DD, the latter read
// as midnight in loc.
func parseFlexibleTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dayLayout, s, loc)
}

// parseTypeQuery reads an optional transaction type query parameter.
func parseTypeQuery(c *gin.Context, name string) (*models.TransactionType, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	txType := models.TransactionType(v)
	if !txType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+name+", must be income or expense")
	}
	return &txType, nil
}

// respondWithError records err on the context and stops the chain. The
// ErrorHandler middleware turns it into the JSON error response.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
