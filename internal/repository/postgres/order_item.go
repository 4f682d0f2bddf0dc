package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/pkg/database"
)

const orderItemColumns = `order_item_id, order_id, product_id, quantity, price_at_purchase::text`

// OrderItemRepository implements repository.OrderItemRepository using
// PostgreSQL.
type OrderItemRepository struct {
	pool database.DBTX
}

// NewOrderItemRepository creates a new PostgreSQL-backed order item
// repository.
func NewOrderItemRepository(pool database.DBTX) *OrderItemRepository {
	return &OrderItemRepository{pool: pool}
}

// ListByOrderIDs returns all line items belonging to the given orders.
func (r *OrderItemRepository) ListByOrderIDs(ctx context.Context, orderIDs []string) ([]domain.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []domain.OrderItem{}, nil
	}

	query := `SELECT ` + orderItemColumns + `
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_item_id`

	return r.listItems(ctx, "ListOrderItemsByOrderIDs", query, orderIDs)
}

// ListByProductID returns all line items referencing the given product.
func (r *OrderItemRepository) ListByProductID(ctx context.Context, productID string) ([]domain.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + `
		FROM order_items
		WHERE product_id = $1
		ORDER BY order_item_id`

	return r.listItems(ctx, "ListOrderItemsByProductID", query, productID)
}

// ListSoldBetween returns line items of orders placed inside [start, end],
// each with its product embedded.
func (r *OrderItemRepository) ListSoldBetween(ctx context.Context, start, end time.Time) (items []domain.SoldItem, err error) {
	query := `
		SELECT
			oi.order_item_id, oi.order_id, oi.product_id, oi.quantity,
			oi.price_at_purchase::text,
			p.product_id, p.name, p.price::text, p.created_at
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.order_id
		LEFT JOIN products p ON oi.product_id = p.product_id
		WHERE o.order_date BETWEEN $1 AND $2
		ORDER BY oi.order_item_id`

	ctx, done := database.TraceQuery(ctx, "ListSoldItemsBetween", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sold items: %w", err)
	}
	defer rows.Close()

	items = make([]domain.SoldItem, 0)
	for rows.Next() {
		var (
			item domain.SoldItem
			// Nullable product columns from the LEFT JOIN.
			productID, name, price *string
			productCreatedAt       *time.Time
		)

		if err = rows.Scan(
			&item.OrderItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.PriceAtPurchase,
			&productID,
			&name,
			&price,
			&productCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sold item row: %w", err)
		}

		if productID != nil {
			p := domain.Product{ProductID: *productID}
			if name != nil {
				p.Name = *name
			}
			if price != nil {
				p.Price = *price
			}
			if productCreatedAt != nil {
				p.CreatedAt = *productCreatedAt
			}
			item.Product = &p
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sold item rows: %w", err)
	}

	return items, nil
}

func (r *OrderItemRepository) listItems(ctx context.Context, operation, query string, args ...any) (items []domain.OrderItem, err error) {
	ctx, done := database.TraceQuery(ctx, operation, query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	items = make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err = rows.Scan(
			&item.OrderItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.PriceAtPurchase,
		); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}
