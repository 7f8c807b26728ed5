package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
)

// PlaylistHandler handles playlist aggregate endpoints. Create and update
// arrive as multipart forms (the cover image rides along with the fields);
// the stringified songs and platform_links sub-fields are decoded into typed
// structs and validated here, before any service call.
type PlaylistHandler struct {
	playlistService *service.PlaylistService
	uploadService   *service.UploadService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(playlistService *service.PlaylistService, uploadService *service.UploadService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService, uploadService: uploadService}
}

// Get godoc
// GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, "Playlist not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, playlist)
}

// GetRandom godoc
// GET /api/v1/playlists/random
func (h *PlaylistHandler) GetRandom(c *gin.Context) {
	playlist, err := h.playlistService.GetRandom(c.Request.Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, "No playlists found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, playlist)
}

// GetAll godoc
// GET /api/v1/playlists
func (h *PlaylistHandler) GetAll(c *gin.Context) {
	playlists, err := h.playlistService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if playlists == nil {
		playlists = []model.Playlist{}
	}

	response.Success(c, http.StatusOK, playlists)
}

// Create godoc
// POST /api/v1/playlists
// Multipart form: title, songs (JSON array), platform_links (JSON object,
// optional), image (file, optional).
func (h *PlaylistHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	songsField := c.PostForm("songs")

	if title == "" || songsField == "" {
		response.Fail(c, http.StatusBadRequest, "title and songs are required")
		return
	}

	var songs []model.Song
	if err := json.Unmarshal([]byte(songsField), &songs); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid JSON format for songs or platform_links")
		return
	}

	var links *model.PlatformLinks
	if linksField := c.PostForm("platform_links"); linksField != "" {
		links = &model.PlatformLinks{}
		if err := json.Unmarshal([]byte(linksField), links); err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid JSON format for songs or platform_links")
			return
		}
	}

	if len(songs) == 0 {
		response.Fail(c, http.StatusBadRequest, "songs must be a non-empty array")
		return
	}
	for _, s := range songs {
		if s.Name == "" || s.Duration == "" {
			response.Fail(c, http.StatusBadRequest, "each song must have a name and duration")
			return
		}
	}

	input := &model.CreatePlaylistInput{
		Title:         title,
		Songs:         songs,
		PlatformLinks: links,
	}

	// Upload the cover first so the stored row carries the final URL.
	if header, err := c.FormFile("image"); err == nil {
		result, err := h.uploadService.UploadImage(c.Request.Context(), header, "playlists")
		if err != nil {
			failUpload(c, err)
			return
		}
		input.CoverImageURL = &result.URL
	}

	playlist, err := h.playlistService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			response.Fail(c, http.StatusConflict, "Playlist with this ID already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, playlist)
}

// Update godoc
// PUT /api/v1/playlists/:id
// Same multipart shape as Create with every field optional. Present fields
// are applied; a songs field wholesale-replaces the existing list.
func (h *PlaylistHandler) Update(c *gin.Context) {
	id := c.Param("id")

	// Existence first: a missing playlist should 404 before any upload work.
	if _, err := h.playlistService.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, "Playlist not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	input := &model.UpdatePlaylistInput{}

	if title := c.PostForm("title"); title != "" {
		input.Title = &title
	}

	if songsField := c.PostForm("songs"); songsField != "" {
		var songs []model.Song
		if err := json.Unmarshal([]byte(songsField), &songs); err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid JSON format for songs")
			return
		}
		if songs == nil {
			response.Fail(c, http.StatusBadRequest, "songs must be an array")
			return
		}
		for _, s := range songs {
			if s.Name == "" || s.Duration == "" {
				response.Fail(c, http.StatusBadRequest, "each song must have a name and duration")
				return
			}
		}
		input.Songs = songs
	}

	if linksField := c.PostForm("platform_links"); linksField != "" {
		links := &model.PlatformLinks{}
		if err := json.Unmarshal([]byte(linksField), links); err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid JSON format for platform_links")
			return
		}
		input.PlatformLinks = links
	}

	// A replaced cover's old asset stays in the image store; only its URL is
	// persisted, so there is no public ID to delete it by.
	if header, err := c.FormFile("image"); err == nil {
		result, err := h.uploadService.UploadImage(c.Request.Context(), header, "playlists")
		if err != nil {
			failUpload(c, err)
			return
		}
		input.CoverImageURL = &result.URL
	}

	playlist, err := h.playlistService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, "Playlist not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, playlist)
}

// Delete godoc
// DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, "Playlist not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Playlist deleted successfully")
}

// failUpload maps upload validation failures to 400 and everything else to 500.
func failUpload(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, "Only image files are allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, "File too large. Maximum size is 5MB")
	default:
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
