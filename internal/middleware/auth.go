package middleware

import (
	"strings"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextClaims = "claims"
)

// TokenVerifier checks a bearer token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token and stores its claims on the
// context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Unauthorized"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected bearer token", "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetClaims returns the verified token claims, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
