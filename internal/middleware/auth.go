package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cofoundr_backend/internal/auth"
	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/pkg/contextkeys"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the gin context. The token may also arrive in the access_token query
// parameter, which browsers need for websocket upgrades.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			tokenStr = c.Query("access_token")
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, string(claims.Role))
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireRole rejects callers whose role does not match.
func RequireRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := contextkeys.Role(c)
		if !ok || models.UserRole(role) != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}
