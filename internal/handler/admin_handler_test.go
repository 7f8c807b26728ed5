package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/middleware"
	"github.com/binarychai/playlist-backend/internal/service"
)

func TestLogoutClearsCookie(t *testing.T) {
	cfg := &config.Config{Environment: "development", JWTSecret: "s", JWTExpiry: time.Hour}
	h := NewAdminHandler(nil, service.NewAuthService(cfg), cfg)

	r := gin.New()
	r.POST("/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env := decodeEnvelope(t, w); !env.Success || env.Message != "Logged out successfully." {
		t.Errorf("unexpected envelope: %+v", env)
	}

	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == middleware.CookieName {
			found = true
			if ck.Value != "" || ck.MaxAge >= 0 {
				t.Errorf("cookie not cleared: value=%q maxAge=%d", ck.Value, ck.MaxAge)
			}
		}
	}
	if !found {
		t.Error("no admin_token cookie in logout response")
	}
}

// Login without a body must fail validation, not panic on the nil service.
func TestLoginMissingCredentials(t *testing.T) {
	cfg := &config.Config{Environment: "development", JWTSecret: "s", JWTExpiry: time.Hour}
	h := NewAdminHandler(nil, service.NewAuthService(cfg), cfg)

	r := gin.New()
	r.POST("/login", h.Login)

	w := postJSON(t, r, "/login", `{"email": "admin@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "Email and password are required." {
		t.Errorf("message = %q", env.Message)
	}
}
