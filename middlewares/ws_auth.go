package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware accepts the JWT from either the query string or the
// Authorization header. Browser WebSocket clients cannot set headers,
// so ?token= is the usual path.
func WSAuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			c.Abort()
			return
		}

		userID, role, err := parseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)

		if len(requiredRoles) > 0 && !roleAllowed(role, requiredRoles) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
