package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
	"github.com/binarychai/playlist-backend/internal/validator"
)

// QuizHandler handles quiz submission endpoints.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// List godoc
// GET /api/v1/quiz?page&limit&playlist_id
func (h *QuizHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 || limit < 1 {
		response.Fail(c, http.StatusBadRequest, "Page and limit must be positive numbers")
		return
	}

	quizzes, total, err := h.quizService.List(c.Request.Context(), c.Query("playlist_id"), page, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, quizzes, response.NewPagination(total, page, limit))
}

// Create godoc
// POST /api/v1/quiz
func (h *QuizHandler) Create(c *gin.Context) {
	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, "All question answers (1-4) and playlist_id are required")
		return
	}

	for i, answer := range req.Answers() {
		if answer < 1 || answer > 5 {
			response.Fail(c, http.StatusBadRequest,
				fmt.Sprintf("Question %d answer must be between 1 and 5", i+1))
			return
		}
	}

	quiz := &model.Quiz{
		Question1:  *req.Question1,
		Question2:  *req.Question2,
		Question3:  *req.Question3,
		Question4:  *req.Question4,
		PlaylistID: req.PlaylistID,
		IPAddress:  clientIP(c),
	}

	if err := h.quizService.Create(c.Request.Context(), quiz); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, quiz)
}

// clientIP captures the best-effort submitter address: Gin prefers the
// proxy-forwarded header and falls back to the transport remote address.
func clientIP(c *gin.Context) *string {
	ip := c.ClientIP()
	if ip == "" {
		return nil
	}
	return &ip
}
