package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dream/internal/errors"
	"dream/internal/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func protectedRouter(enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, enabled))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})
	return r
}

func get(r *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		token, expiresAt, err := GenerateAccessToken(testSecret, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Until(expiresAt) <= 0 {
			t.Errorf("expected expiry in the future, got %s", expiresAt)
		}

		rec := get(protectedRouter(true), "/ping", map[string]string{"Authorization": "Bearer " + token})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		rec := get(protectedRouter(true), "/ping", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong_secret", func(t *testing.T) {
		token, _, _ := GenerateAccessToken("other-secret", time.Hour)
		rec := get(protectedRouter(true), "/ping", map[string]string{"Authorization": "Bearer " + token})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		token, _, _ := GenerateAccessToken(testSecret, -time.Minute)
		rec := get(protectedRouter(true), "/ping", map[string]string{"Authorization": "Bearer " + token})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		rec := get(protectedRouter(true), "/ping", map[string]string{"Authorization": "Token abc"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("disabled_passes_through", func(t *testing.T) {
		rec := get(protectedRouter(false), "/ping", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("generates_id", func(t *testing.T) {
		rec := get(r, "/ping", nil)
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected a request id header")
		}
	})

	t.Run("reuses_incoming_uuid", func(t *testing.T) {
		id := "0190f8a4-6c8e-7b1e-9a53-3f2b8c1d4e5f"
		rec := get(r, "/ping", map[string]string{"X-Request-ID": id})
		if got := rec.Header().Get("X-Request-ID"); got != id {
			t.Errorf("expected %s, got %s", id, got)
		}
	})

	t.Run("replaces_garbage_id", func(t *testing.T) {
		rec := get(r, "/ping", map[string]string{"X-Request-ID": "not-a-uuid"})
		if got := rec.Header().Get("X-Request-ID"); got == "not-a-uuid" {
			t.Error("expected garbage id to be replaced")
		}
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrAssetNotFound) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		_ = c.Error(apperrors.ErrInternalServer)
	})

	if rec := get(r, "/app", nil); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for app error, got %d", rec.Code)
	}
	if rec := get(r, "/raw", nil); rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for raw error, got %d", rec.Code)
	}

	if rec := get(r, "/written", nil); rec.Code != http.StatusOK || rec.Body.String() != "partial" {
		t.Errorf("expected started response left alone, got %d %q", rec.Code, rec.Body.String())
	}
}
