package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vidyapath/planner-api/internal/constants"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/services"
)

// RequireAuth validates the bearer token and stores the user ID in context.
// Both "Authorization: Bearer <token>" and the legacy "x-auth-token" header
// are accepted, since older clients still send the latter.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apierrors.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		userID, err := services.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.GetHeader("x-auth-token")
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
