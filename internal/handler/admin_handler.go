package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/middleware"
	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
	"github.com/binarychai/playlist-backend/internal/validator"
)

// AdminHandler handles admin authentication. The token travels in an
// http-only cookie rather than a header so the front end never touches it.
type AdminHandler struct {
	adminService *service.AdminService
	authService  *service.AuthService
	cfg          *config.Config
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService, authService *service.AuthService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{adminService: adminService, authService: authService, cfg: cfg}
}

// Login godoc
// POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailMessage(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	admin, token, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.FailMessage(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		response.FailMessage(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	h.setAuthCookie(c, token, h.authService.CookieMaxAge())

	response.SuccessWithMessage(c, http.StatusOK, admin.Profile(), "Login successful.")
}

// Logout godoc
// POST /api/v1/admin/logout
// Idempotent: clearing an already-cleared cookie still succeeds.
func (h *AdminHandler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.SuccessMessage(c, http.StatusOK, "Logged out successfully.")
}

// Me godoc
// GET /api/v1/admin/me
func (h *AdminHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.FailMessage(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	admin, err := h.adminService.GetProfile(c.Request.Context(), claims.AdminID)
	if err != nil {
		response.FailMessage(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	response.Success(c, http.StatusOK, admin.Profile())
}

func (h *AdminHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", h.cfg.IsProduction(), true)
}
