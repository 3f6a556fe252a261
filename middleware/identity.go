// middleware/identity.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	logger "github.com/SAHAYOGESHWARAN/guries-sub010/logging"
)

// Identity reads the caller identity from the x-user-id and
// x-user-role headers set by the upstream gateway and places it on the
// request context. Requests without an identity are rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("x-user-id")
		if userID == "" {
			logger.Warn("Request without user identity",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		role := c.GetHeader("x-user-role")
		if role == "" {
			role = auth.RoleGuest
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequirePermission rejects the request with 403 unless the caller's
// role carries the given permission. Services re-check permissions
// themselves; this keeps obviously unauthorized traffic out early.
func RequirePermission(registry *auth.Registry, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		roleStr, _ := role.(string)

		if !registry.HasPermission(roleStr, permission) {
			logger.Warn("Permission denied",
				zap.String("role", roleStr),
				zap.String("permission", permission),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
