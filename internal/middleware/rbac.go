package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/response"
)

// RequireSuperAdmin checks that the authenticated admin holds the
// super_admin role. Authorization is a separate gate from authentication: it
// assumes RequireAdmin already ran and rejects with 403, not 401, when the
// role does not match. No route currently mounts it, but it composes onto
// any admin route that needs the elevated privilege.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		if claims.Role != model.RoleSuperAdmin {
			response.AbortFail(c, http.StatusForbidden, "Access denied. Super admin privileges required.")
			return
		}

		c.Next()
	}
}
