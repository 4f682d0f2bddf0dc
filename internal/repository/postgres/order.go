package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/internal/repository"
	"github.com/utafrali/storefront-insights/pkg/database"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

// Monetary columns are selected as text so amounts reach the aggregation
// boundary as exact decimal strings.
const orderColumns = `
	order_id, user_id, order_date, total_amount::text, currency, payment_status,
	shipping_address_line1, shipping_address_line2, shipping_city, shipping_state,
	shipping_zip_code, shipping_country, shipping_status, tracking_number,
	shipping_provider, customer_rating, customer_review, created_at, updated_at`

// OrderRepository implements repository.OrderRepository using PostgreSQL.
type OrderRepository struct {
	pool database.DBTX
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.OrderID,
		&o.UserID,
		&o.OrderDate,
		&o.TotalAmount,
		&o.Currency,
		&o.PaymentStatus,
		&o.ShippingAddressLine1,
		&o.ShippingAddressLine2,
		&o.ShippingCity,
		&o.ShippingState,
		&o.ShippingZipCode,
		&o.ShippingCountry,
		&o.ShippingStatus,
		&o.TrackingNumber,
		&o.ShippingProvider,
		&o.CustomerRating,
		&o.CustomerReview,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

// GetByID retrieves an order by its ID.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (order *domain.Order, err error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	ctx, done := database.TraceQuery(ctx, "GetOrderByID", query)
	defer func() { done(err) }()

	var o domain.Order
	if err = scanOrder(r.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return &o, nil
}

// List returns orders matching the given filter with the total count.
func (r *OrderRepository) List(ctx context.Context, filter repository.OrderFilter) (orders []domain.Order, total int, err error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.PaymentStatus != nil {
		conditions = append(conditions, fmt.Sprintf("payment_status = $%d", argIndex))
		args = append(args, *filter.PaymentStatus)
		argIndex++
	}

	if filter.ShippingStatus != nil {
		conditions = append(conditions, fmt.Sprintf("shipping_status = $%d", argIndex))
		args = append(args, *filter.ShippingStatus)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() returns the unpaginated total in the same query.
	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM orders
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		orderColumns, whereClause, argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}
	args = append(args, limit, offset)

	ctx, done := database.TraceQuery(ctx, "ListOrders", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders = make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(
			&o.OrderID,
			&o.UserID,
			&o.OrderDate,
			&o.TotalAmount,
			&o.Currency,
			&o.PaymentStatus,
			&o.ShippingAddressLine1,
			&o.ShippingAddressLine2,
			&o.ShippingCity,
			&o.ShippingState,
			&o.ShippingZipCode,
			&o.ShippingCountry,
			&o.ShippingStatus,
			&o.TrackingNumber,
			&o.ShippingProvider,
			&o.CustomerRating,
			&o.CustomerReview,
			&o.CreatedAt,
			&o.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, total, nil
}

// CountBetween counts orders whose order_date falls inside [start, end].
func (r *OrderRepository) CountBetween(ctx context.Context, start, end time.Time) (count int, err error) {
	query := `SELECT count(*) FROM orders WHERE order_date BETWEEN $1 AND $2`

	ctx, done := database.TraceQuery(ctx, "CountOrdersBetween", query)
	defer func() { done(err) }()

	if err = r.pool.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

// ListBetween returns orders whose order_date falls inside [start, end].
func (r *OrderRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE order_date BETWEEN $1 AND $2
		ORDER BY order_date`

	return r.listOrders(ctx, "ListOrdersBetween", query, start, end)
}

// ListRecentWithUsers returns the most recent orders in [start, end] with each
// order's user embedded, newest first.
func (r *OrderRepository) ListRecentWithUsers(ctx context.Context, start, end time.Time, limit int) (orders []domain.OrderWithUser, err error) {
	query := `
		SELECT
			o.order_id, o.user_id, o.order_date, o.total_amount::text, o.currency,
			o.payment_status, o.shipping_address_line1, o.shipping_address_line2,
			o.shipping_city, o.shipping_state, o.shipping_zip_code, o.shipping_country,
			o.shipping_status, o.tracking_number, o.shipping_provider,
			o.customer_rating, o.customer_review, o.created_at, o.updated_at,
			u.user_id, u.first_name, u.last_name, u.email, u.created_at
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.user_id
		WHERE o.order_date BETWEEN $1 AND $2
		ORDER BY o.order_date DESC
		LIMIT $3`

	ctx, done := database.TraceQuery(ctx, "ListRecentOrdersWithUsers", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	defer rows.Close()

	orders = make([]domain.OrderWithUser, 0)
	for rows.Next() {
		var (
			o domain.OrderWithUser
			// Nullable user columns from the LEFT JOIN.
			userID, firstName, lastName, email *string
			userCreatedAt                      *time.Time
		)

		if err = rows.Scan(
			&o.OrderID,
			&o.UserID,
			&o.OrderDate,
			&o.TotalAmount,
			&o.Currency,
			&o.PaymentStatus,
			&o.ShippingAddressLine1,
			&o.ShippingAddressLine2,
			&o.ShippingCity,
			&o.ShippingState,
			&o.ShippingZipCode,
			&o.ShippingCountry,
			&o.ShippingStatus,
			&o.TrackingNumber,
			&o.ShippingProvider,
			&o.CustomerRating,
			&o.CustomerReview,
			&o.CreatedAt,
			&o.UpdatedAt,
			&userID,
			&firstName,
			&lastName,
			&email,
			&userCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recent order row: %w", err)
		}

		if userID != nil {
			u := domain.User{UserID: *userID}
			if firstName != nil {
				u.FirstName = *firstName
			}
			if lastName != nil {
				u.LastName = *lastName
			}
			if email != nil {
				u.Email = *email
			}
			if userCreatedAt != nil {
				u.CreatedAt = *userCreatedAt
			}
			o.User = &u
		}

		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent order rows: %w", err)
	}

	return orders, nil
}

// ListStatuses returns the payment and shipping status columns of every order.
func (r *OrderRepository) ListStatuses(ctx context.Context) (pairs []domain.StatusPair, err error) {
	query := `SELECT payment_status, shipping_status FROM orders`

	ctx, done := database.TraceQuery(ctx, "ListOrderStatuses", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list order statuses: %w", err)
	}
	defer rows.Close()

	pairs = make([]domain.StatusPair, 0)
	for rows.Next() {
		var p domain.StatusPair
		if err = rows.Scan(&p.PaymentStatus, &p.ShippingStatus); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status rows: %w", err)
	}

	return pairs, nil
}

// The review reports never touch address or amount columns, so the reviewed
// and rated queries project only what they aggregate.
const reviewedOrderColumns = `order_id, user_id, customer_rating, customer_review, shipping_status, created_at`

// ListRated returns the rating projection of orders carrying a customer
// rating, newest first. A limit of zero means no cap.
func (r *OrderRepository) ListRated(ctx context.Context, limit int) (orders []domain.RatedOrder, err error) {
	query := `SELECT customer_rating, created_at
		FROM orders
		WHERE customer_rating IS NOT NULL
		ORDER BY created_at DESC`

	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	ctx, done := database.TraceQuery(ctx, "ListRatedOrders", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rated orders: %w", err)
	}
	defer rows.Close()

	orders = make([]domain.RatedOrder, 0)
	for rows.Next() {
		var o domain.RatedOrder
		if err = rows.Scan(&o.CustomerRating, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rated order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rated order rows: %w", err)
	}

	return orders, nil
}

// ListReviewed returns the review projection of orders carrying review text,
// newest first. A limit of zero means no cap.
func (r *OrderRepository) ListReviewed(ctx context.Context, limit int) ([]domain.ReviewedOrder, error) {
	query := `SELECT ` + reviewedOrderColumns + `
		FROM orders
		WHERE customer_review IS NOT NULL
		ORDER BY created_at DESC`

	if limit > 0 {
		return r.listReviewedOrders(ctx, "ListReviewedOrders", query+` LIMIT $1`, limit)
	}
	return r.listReviewedOrders(ctx, "ListReviewedOrders", query)
}

// ListReviewedByIDs returns the review projection of the orders among ids
// that carry review text, newest first.
func (r *OrderRepository) ListReviewedByIDs(ctx context.Context, ids []string) ([]domain.ReviewedOrder, error) {
	if len(ids) == 0 {
		return []domain.ReviewedOrder{}, nil
	}

	query := `SELECT ` + reviewedOrderColumns + `
		FROM orders
		WHERE order_id = ANY($1)
		  AND customer_review IS NOT NULL
		ORDER BY created_at DESC`

	return r.listReviewedOrders(ctx, "ListReviewedOrdersByIDs", query, ids)
}

func (r *OrderRepository) listReviewedOrders(ctx context.Context, operation, query string, args ...any) (orders []domain.ReviewedOrder, err error) {
	ctx, done := database.TraceQuery(ctx, operation, query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	orders = make([]domain.ReviewedOrder, 0)
	for rows.Next() {
		var o domain.ReviewedOrder
		if err = rows.Scan(
			&o.OrderID,
			&o.UserID,
			&o.CustomerRating,
			&o.CustomerReview,
			&o.ShippingStatus,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reviewed order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewed order rows: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) listOrders(ctx context.Context, operation, query string, args ...any) (orders []domain.Order, err error) {
	ctx, done := database.TraceQuery(ctx, operation, query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	orders = make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err = scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
