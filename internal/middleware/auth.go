package middleware

import (
	"net/http"
	"strings"

	"hotelpms/internal/domain"
	jwtsvc "hotelpms/internal/pkg/jwt"
	"hotelpms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id and role in the
// request context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(claims.Role))

		c.Next()
	}
}

// RequireRole gates a route group to one staff role; admins pass everywhere.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := domain.Role(c.GetString("role"))
		if got != role && got != domain.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role")
			return
		}
		c.Next()
	}
}
