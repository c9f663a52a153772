package middleware

import (
	"net/http"

	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles permits the request only when the authenticated role is in
// the allow-list. It is the single place access policy lives; handlers do
// not re-check roles. Must run after AuthMiddleware. Responds 403, distinct
// from the 401 an unauthenticated request gets at the auth gate.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role, ok := c.Get(string(domain.KeyUserRole))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		if roleStr, _ := role.(string); !allowed[roleStr] {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
