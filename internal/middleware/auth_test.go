package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthService(expiry time.Duration) *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	})
}

func protectedRouter(auth *service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAdmin(auth)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"admin_id": claims.AdminID})
	})
	r.GET("/protected", chain...)
	return r
}

func request(t *testing.T, r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminMissingCookie(t *testing.T) {
	r := protectedRouter(newAuthService(time.Hour))

	w := request(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	r := protectedRouter(newAuthService(time.Hour))

	w := request(t, r, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminExpiredToken(t *testing.T) {
	expiredIssuer := newAuthService(-time.Minute)
	token, err := expiredIssuer.GenerateToken(&model.Admin{ID: 1, Email: "a@b.co", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := protectedRouter(newAuthService(time.Hour))
	w := request(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminValidToken(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(&model.Admin{ID: 42, Email: "a@b.co", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := protectedRouter(auth)
	w := request(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireSuperAdminRejectsPlainAdmin(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(&model.Admin{ID: 1, Email: "a@b.co", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := protectedRouter(auth, RequireSuperAdmin())
	w := request(t, r, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireSuperAdminAllowsSuperAdmin(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(&model.Admin{ID: 1, Email: "a@b.co", Role: model.RoleSuperAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := protectedRouter(auth, RequireSuperAdmin())
	w := request(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}
