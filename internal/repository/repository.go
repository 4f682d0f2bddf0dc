package repository

import (
	"context"
	"time"

	"github.com/utafrali/storefront-insights/internal/domain"
)

// OrderFilter defines filter criteria for listing orders.
type OrderFilter struct {
	PaymentStatus  *string
	ShippingStatus *string
	Page           int
	PerPage        int
}

// OrderRepository defines the read operations over the orders table. The
// reporting pipeline never mutates order rows.
type OrderRepository interface {
	// GetByID retrieves an order by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns orders matching the given filter along with the total count.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)

	// CountBetween counts orders whose order_date falls inside [start, end].
	CountBetween(ctx context.Context, start, end time.Time) (int, error)

	// ListBetween returns orders whose order_date falls inside [start, end].
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error)

	// ListRecentWithUsers returns the most recent orders in [start, end] with
	// each order's user embedded, newest first, capped at limit.
	ListRecentWithUsers(ctx context.Context, start, end time.Time, limit int) ([]domain.OrderWithUser, error)

	// ListStatuses returns the payment and shipping status columns of every
	// order, nothing else.
	ListStatuses(ctx context.Context) ([]domain.StatusPair, error)

	// ListRated returns the rating projection of orders carrying a customer
	// rating, newest first. A limit of zero means no cap.
	ListRated(ctx context.Context, limit int) ([]domain.RatedOrder, error)

	// ListReviewed returns the review projection of orders carrying review
	// text, newest first, capped at limit. A limit of zero means no cap.
	ListReviewed(ctx context.Context, limit int) ([]domain.ReviewedOrder, error)

	// ListReviewedByIDs returns the review projection of the orders among ids
	// that carry review text, newest first.
	ListReviewedByIDs(ctx context.Context, ids []string) ([]domain.ReviewedOrder, error)
}

// OrderItemRepository defines the read operations over the order_items table.
type OrderItemRepository interface {
	// ListByOrderIDs returns all line items belonging to the given orders.
	ListByOrderIDs(ctx context.Context, orderIDs []string) ([]domain.OrderItem, error)

	// ListByProductID returns all line items referencing the given product.
	ListByProductID(ctx context.Context, productID string) ([]domain.OrderItem, error)

	// ListSoldBetween returns line items of orders placed inside [start, end],
	// each with its product embedded.
	ListSoldBetween(ctx context.Context, start, end time.Time) ([]domain.SoldItem, error)
}

// UserRepository defines the read operations over the users table.
type UserRepository interface {
	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)

	// ListByIDs returns the users with the given identifiers.
	ListByIDs(ctx context.Context, ids []string) ([]domain.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ProductRepository defines the read operations over the products table.
type ProductRepository interface {
	// Count returns the total number of products.
	Count(ctx context.Context) (int, error)

	// ListByIDs returns the products with the given identifiers.
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)

	// List returns all products, newest first.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// AdminUserRepository defines the read operations over the admin_users table.
type AdminUserRepository interface {
	// List returns all admin accounts, newest first.
	List(ctx context.Context) ([]domain.AdminUser, error)

	// GetByID retrieves an admin account by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
}
