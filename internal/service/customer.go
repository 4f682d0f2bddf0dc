package service

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/internal/repository"
)

// CustomerService implements the read-only customer passthrough operations.
type CustomerService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.UserRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// ListCustomers returns all customers, newest first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// GetCustomer retrieves a single customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
