package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/imagestore"
	"github.com/binarychai/playlist-backend/internal/logger"
)

// Sentinel errors for image uploads.
var (
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
)

// maxUploadBytes caps uploads at 5 MB.
const maxUploadBytes = 5 << 20

// UploadService validates uploaded files and pushes them to the image store.
type UploadService struct {
	images *imagestore.Client
	log    zerolog.Logger
}

// NewUploadService creates a new UploadService.
func NewUploadService(images *imagestore.Client, log zerolog.Logger) *UploadService {
	return &UploadService{
		images: images,
		log:    logger.Component(log, "upload_service"),
	}
}

// UploadImage checks MIME type and size, then uploads to the image store.
func (s *UploadService) UploadImage(ctx context.Context, header *multipart.FileHeader, folder string) (*imagestore.UploadResult, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedFileType, contentType)
	}
	if header.Size > maxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, header.Size, maxUploadBytes)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	result, err := s.images.Upload(ctx, file, folder)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("public_id", result.PublicID).Int64("bytes", header.Size).Msg("image uploaded")
	return result, nil
}

// DeleteImage removes an asset from the image store by public ID.
func (s *UploadService) DeleteImage(ctx context.Context, publicID string) error {
	return s.images.Delete(ctx, publicID)
}
