package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
)

// UploadHandler handles standalone image uploads.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage godoc
// POST /api/v1/upload/image
// Multipart form: image (file), folder (optional, defaults to playlists).
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	result, err := h.uploadService.UploadImage(c.Request.Context(), header, c.PostForm("folder"))
	if err != nil {
		failUpload(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}
