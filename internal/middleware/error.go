package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/logger"
)

// ErrorHandler writes the JSON error body for the last error a handler
// recorded with c.Error. Nothing is written when the handler already
// started a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		writeError(c, c.Errors.Last().Err)
	}
}

func writeError(c *gin.Context, err error) {
	fields := []interface{}{
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	}
	if id, ok := c.Get(requestIDKey); ok {
		fields = append(fields, "request_id", id)
	}

	appErr := apperrors.ErrInternalServer
	var target *apperrors.AppError
	switch {
	case errors.As(err, &target):
		appErr = target
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed", append(fields, "code", appErr.Code, "internal", appErr.Internal.Error())...)
		}
	default:
		// Unknown errors keep their detail in the log only.
		logger.Get().Errorw("unexpected error", append(fields, "error", err.Error())...)
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
