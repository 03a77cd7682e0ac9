package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/middleware"
	"dream/internal/services"
)

// AuthHandler handles the passcode unlock.
type AuthHandler struct {
	authService services.AuthServicer
	jwtSecret   string
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthServicer, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// UnlockRequest represents the unlock request payload
type UnlockRequest struct {
	Passcode string `json:"passcode" binding:"required,max=64"`
}

// UnlockResponse carries the access token
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Unlock exchanges the owner's passcode for an access token
// @Summary     Unlock the ledger
// @Description Verify the owner's passcode and get a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body UnlockRequest true "Passcode"
// @Success     200 {object} UnlockResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid passcode"
// @Failure     404 {object} ErrorResponse "Passcode lock not enabled"
// @Router      /auth/unlock [post]
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.authService.VerifyPasscode(req.Passcode); err != nil {
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateAccessToken(h.jwtSecret, h.tokenTTL)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, UnlockResponse{Token: token, ExpiresAt: expiresAt})
}
