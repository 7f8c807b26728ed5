package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/logger"
	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
)

// AdminService handles admin login and profile lookups.
type AdminService struct {
	adminRepo *repository.AdminRepository
	auth      *AuthService
	log       zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		auth:      auth,
		log:       logger.Component(log, "admin_service"),
	}
}

// Login authenticates an active admin and issues a token. Unknown email and
// wrong password both come back as ErrInvalidCredentials so the failure mode
// leaks nothing.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.adminRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Int("admin_id", admin.ID).Str("role", string(admin.Role)).Msg("admin logged in")
	return admin, token, nil
}

// GetProfile returns an admin by ID.
func (s *AdminService) GetProfile(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}
