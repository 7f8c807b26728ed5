package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
	"github.com/binarychai/playlist-backend/internal/validator"
)

// UserHandler handles email signup endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// GET /api/v1/users?page&limit
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 || limit < 1 {
		response.Fail(c, http.StatusBadRequest, "Page and limit must be positive numbers")
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, users, response.NewPagination(total, page, limit))
}

// Create godoc
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, "Email is required")
		return
	}

	if !service.ValidEmail(req.Email) {
		response.Fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	user := &model.User{
		Email:     req.Email,
		IPAddress: clientIP(c),
	}

	if err := h.userService.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, "Email already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, user)
}
