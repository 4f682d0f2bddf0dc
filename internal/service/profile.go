package service

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/internal/repository"
)

// ProfileService implements the read-only admin profile passthrough
// operations.
type ProfileService struct {
	repo   repository.AdminUserRepository
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.AdminUserRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// ListProfiles returns all admin accounts, newest first.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.AdminUser, error) {
	return s.repo.List(ctx)
}

// GetProfile retrieves a single admin account by ID.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*domain.AdminUser, error) {
	return s.repo.GetByID(ctx, id)
}
