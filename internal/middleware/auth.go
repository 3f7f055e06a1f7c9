package middleware

import (
	"net/http"
	"strings"

	"academy_backend/internal/auth"
	"academy_backend/internal/logger"
	"academy_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserIDKey = "userID"
	CtxRoleKey   = "role"
)

// AuthMiddleware verifies the bearer token and attaches the
// authenticated identity (id, role) to the request. Any failure stops
// the request with 401 before handler logic runs.
func AuthMiddleware(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxRoleKey, claims.Role)

		// Make the identity visible to the request logger too.
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles enforces a role predicate after AuthMiddleware has
// proven identity. Kept separate on purpose: the auth gate
// authenticates, this one authorizes.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(CtxRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: invalid role"})
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(CtxUserIDKey)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole returns the authenticated user's role from the gin context.
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(CtxRoleKey)
	if !exists {
		return ""
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}
