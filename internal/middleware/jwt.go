package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
)

const (
	// CookieName is the http-only cookie carrying the admin JWT.
	CookieName = "admin_token"

	// ContextKeyClaims is the Gin context key for validated JWT claims.
	ContextKeyClaims = "claims"
)

// RequireAdmin validates the admin JWT cookie and attaches the decoded
// claims to the request context.
func RequireAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context. Returns nil if
// the auth middleware did not run.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
