package service

import (
	"context"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
)

// QuizService handles quiz submissions and listing.
type QuizService struct {
	quizRepo *repository.QuizRepository
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

// Create stores a quiz submission.
func (s *QuizService) Create(ctx context.Context, q *model.Quiz) error {
	return s.quizRepo.Create(ctx, q)
}

// List returns a page of quiz submissions with pagination totals, optionally
// filtered by a partial playlist ID.
func (s *QuizService) List(ctx context.Context, playlistID string, page, limit int) ([]model.Quiz, int, error) {
	offset := (page - 1) * limit
	return s.quizRepo.ListPaginated(ctx, playlistID, limit, offset)
}
