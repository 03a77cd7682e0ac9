package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "dream/internal/errors"
)

const (
	issuer      = "dream-api"
	ownerSubject = "owner"
)

// JWTClaims represents the claims in the owner's access token.
type JWTClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for the ledger owner valid for ttl.
func GenerateAccessToken(secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &JWTClaims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   ownerSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken parses tokenString and checks its signature, expiry
// and type.
func ValidateAccessToken(secret, tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if claims.TokenType != "access" {
		return nil, errors.New("token is not an access token")
	}
	return claims, nil
}

// AuthMiddleware requires a valid bearer token. When enabled is false every
// request passes through.
func AuthMiddleware(secret string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := ValidateAccessToken(secret, parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := apperrors.WithMessage(apperrors.ErrUnauthorized, message)
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
