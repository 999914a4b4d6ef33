package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookrating-backend/internal/shared/response"
	"bookrating-backend/pkg/jwt"
)

// Context key under which the authenticated user id is stored.
const userIDKey = "userID"

// Auth validates the bearer token and stores the caller's user id
// (the token subject) in the gin context. Owner-scoped handlers read
// it back with UserID.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated caller's user id from the context.
// ok is false when the request was not authenticated.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	if id == "" {
		return "", false
	}
	return id, true
}

// RequireUserID is like UserID but writes a 401 response when the
// identity is missing. Returns ok=false when the request was aborted.
func RequireUserID(c *gin.Context) (string, bool) {
	id, ok := UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "user not authenticated",
			},
		})
		return "", false
	}
	return id, true
}
