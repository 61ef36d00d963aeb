package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key carrying the authenticated user's ID.
	ContextUserID = "userID"

	// ContextClaims is the gin context key carrying the full token claims.
	ContextClaims = "authClaims"
)

// RevocationChecker reports whether a token has been revoked before its
// natural expiry. Implementations must be safe for concurrent use.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
// On success the resolved claims are attached to the request context; the
// middleware itself performs no writes.
func AuthRequired(v Validator, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		claims, err := v.ValidateToken(tokenStr)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// 3. Consult the revocation set (logout invalidates tokens early)
		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.TokenID)
		if err != nil {
			slog.Error("revocation check failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}

		// 4. Attach identity to the request context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthRequired, if any.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user's ID attached by AuthRequired.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
