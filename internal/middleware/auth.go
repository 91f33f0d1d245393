package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DaveedGangi/taskmanagerBackend/internal/auth"
	"github.com/DaveedGangi/taskmanagerBackend/internal/constants"
	apierrors "github.com/DaveedGangi/taskmanagerBackend/internal/errors"
)

// RequireAuth guards protected routes with a bearer token. It extracts
// the token from the Authorization header, verifies it, and binds the
// authenticated user's id to the request context. Invalid and expired
// tokens collapse to the same 401 outcome.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			apierrors.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
