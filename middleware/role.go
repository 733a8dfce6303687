package middleware

import (
	"net/http"

	"salonora/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. It expects
// JWTAuthMiddleware to have already set "role" on the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireSalonStaff admits staff and owner accounts.
func RequireSalonStaff() gin.HandlerFunc {
	return RequireRole(models.RoleStaff, models.RoleOwner)
}

// RequireOwner admits owner accounts only.
func RequireOwner() gin.HandlerFunc {
	return RequireRole(models.RoleOwner)
}
