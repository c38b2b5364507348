package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

// JWTAuthMiddleware requires a valid bearer token and stores the caller's
// identity on the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": utils.CodeUnauthorized, "msg": "Missing Authorization header"})
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"code": utils.CodeBadAuthHeader, "msg": "Malformed Authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": utils.CodeUnauthorized, "msg": "Invalid token"})
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware requires one of the given roles. Admin always passes.
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, utils.CodeInternal, "Missing role on context")
			c.Abort()
			return
		}
		role := roleAny.(models.UserRole)

		hasPermission := role == models.RoleAdmin
		for _, required := range requiredRoles {
			if role == required {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			c.JSON(http.StatusForbidden, gin.H{"code": utils.CodeForbidden, "msg": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// JWTTryAuthMiddleware parses a token when present but never rejects.
// Used by listing endpoints that show extra data to authenticated callers.
func JWTTryAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		if claims, err := utils.ParseToken(parts[1]); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("user_role", claims.Role)
		}

		c.Next()
	}
}
