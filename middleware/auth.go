package middleware

import (
	"net/http"
	"strings"

	"garagepro-backend/services"
	"garagepro-backend/utils"

	"github.com/gin-gonic/gin"
)

const actingUserKey = "actingUser"

// Auth validates the bearer token and stashes an explicit ActingUser in the
// request context. Handlers pull it out with CurrentUser; nothing downstream
// reads raw claims.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "message": "Authorization header required"})
			return
		}
		const prefix = "Bearer "
		if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "message": "Authorization header must be a bearer token"})
			return
		}
		tokenString := header[len(prefix):]

		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "message": "Invalid token"})
			return
		}

		c.Set(actingUserKey, services.ActingUser{
			ID:    claims.UserID,
			Role:  claims.Role,
			Email: claims.Email,
		})
		c.Next()
	}
}

// AdminOnly rejects any caller whose token does not carry the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentUser(c)
		if !ok || !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"success": false, "message": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the ActingUser placed by Auth.
func CurrentUser(c *gin.Context) (services.ActingUser, bool) {
	v, exists := c.Get(actingUserKey)
	if !exists {
		return services.ActingUser{}, false
	}
	actor, ok := v.(services.ActingUser)
	return actor, ok
}
