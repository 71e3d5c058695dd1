package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"luxestore-be/internal/auth"
)

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"

	deviceIDHeader = "X-Device-ID"
)

// Auth is passive: requests without a bearer token pass through anonymous,
// but a token that is present and invalid is rejected outright.
func Auth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// RequireUser guards mutation routes the storefront only offers to signed-in
// shoppers. The state store itself stays auth-agnostic.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// Identity resolves who owns the commerce state for this request: the
// authenticated user if present, otherwise the caller-provided device id.
func Identity(c *gin.Context) (string, bool) {
	if id, ok := UserID(c); ok {
		return "user-" + id, true
	}
	if device := c.GetHeader(deviceIDHeader); device != "" {
		return "device-" + device, true
	}
	return "", false
}
