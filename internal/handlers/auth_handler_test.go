package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/middleware"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/auth/unlock", handler.Unlock)
	return r
}

func TestAuthHandler_Unlock(t *testing.T) {
	t.Run("returns a valid token", func(t *testing.T) {
		svc := &mockAuthService{enabled: true}
		r := setupAuthRouter(NewAuthHandler(svc, "secret", time.Hour))

		rec := doRequest(r, "POST", "/auth/unlock", `{"passcode":"2468"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		token, _ := parseJSON(t, rec)["token"].(string)
		if _, err := middleware.ValidateAccessToken("secret", token); err != nil {
			t.Errorf("expected a valid token, got %v", err)
		}
	})

	t.Run("returns 401 on wrong passcode", func(t *testing.T) {
		svc := &mockAuthService{
			enabled:          true,
			verifyPasscodeFn: func(string) error { return apperrors.ErrInvalidCredentials },
		}
		r := setupAuthRouter(NewAuthHandler(svc, "secret", time.Hour))

		rec := doRequest(r, "POST", "/auth/unlock", `{"passcode":"0000"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 without passcode", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{}, "secret", time.Hour))

		rec := doRequest(r, "POST", "/auth/unlock", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
