package service

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/internal/repository"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

// Orders listed per page when the caller does not ask for a size; ListOrders
// never returns more than maxOrderPageSize rows at once.
const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// Payment and shipping status values accepted as list filters.
var (
	validPaymentStatuses = map[string]bool{
		domain.PaymentPending:  true,
		domain.PaymentPaid:     true,
		domain.PaymentFailed:   true,
		domain.PaymentRefunded: true,
	}
	validShippingStatuses = map[string]bool{
		domain.ShippingPending:   true,
		domain.ShippingShipped:   true,
		domain.ShippingDelivered: true,
		domain.ShippingReturned:  true,
	}
)

// OrderService implements the read-only order passthrough operations.
type OrderService struct {
	repo   repository.OrderRepository
	logger *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// ListOrdersInput holds the filter parameters for listing orders.
type ListOrdersInput struct {
	PaymentStatus  string
	ShippingStatus string
	Page           int
	PerPage        int
}

// OrderPage is one page of orders with pagination metadata.
type OrderPage struct {
	Orders  []domain.Order `json:"orders"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// ListOrders returns a page of orders, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, input ListOrdersInput) (*OrderPage, error) {
	filter := repository.OrderFilter{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultOrderPageSize
	}
	if filter.PerPage > maxOrderPageSize {
		filter.PerPage = maxOrderPageSize
	}

	if input.PaymentStatus != "" {
		if !validPaymentStatuses[input.PaymentStatus] {
			return nil, apperrors.InvalidInput("invalid payment_status filter")
		}
		filter.PaymentStatus = &input.PaymentStatus
	}
	if input.ShippingStatus != "" {
		if !validShippingStatuses[input.ShippingStatus] {
			return nil, apperrors.InvalidInput("invalid shipping_status filter")
		}
		filter.ShippingStatus = &input.ShippingStatus
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &OrderPage{
		Orders:  orders,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// GetOrder retrieves a single order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}
