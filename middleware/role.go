package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
)

// RequireRole gates a route group to the given roles. Runs after
// ValidateToken, which puts the caller's role in the context.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		role := roleVal.(models.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}
