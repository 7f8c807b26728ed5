package service

import (
	"context"
	"regexp"

	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
)

// emailPattern is the basic shape check applied to signups. Deliverability
// is not verified.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService handles email signups and listing.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ValidEmail reports whether an email passes the shape check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Create stores a signup. Returns repository.ErrDuplicateEmail for repeats.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.userRepo.Create(ctx, u)
}

// List returns a page of signups with pagination totals.
func (s *UserService) List(ctx context.Context, page, limit int) ([]model.User, int, error) {
	offset := (page - 1) * limit
	return s.userRepo.ListPaginated(ctx, limit, offset)
}
