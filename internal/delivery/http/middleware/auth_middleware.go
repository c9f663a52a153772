package middleware

import (
	"net/http"
	"strings"

	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer access token, resolves its subject to a
// live user record and attaches {userId, role} to the request context.
// The role always comes from the database, never from token claims, so a
// role change takes effect without waiting for the token to expire.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Subject must still resolve to a user; deleted accounts keep a
		// valid signature until expiry but must not pass the gate.
		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
