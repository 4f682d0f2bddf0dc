package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/pkg/database"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

const productColumns = `product_id, name, price::text, created_at`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Count returns the total number of products.
func (r *ProductRepository) Count(ctx context.Context) (count int, err error) {
	query := `SELECT count(*) FROM products`

	ctx, done := database.TraceQuery(ctx, "CountProducts", query)
	defer func() { done(err) }()

	if err = r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

// ListByIDs returns the products with the given identifiers.
func (r *ProductRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1)`

	return r.listProducts(ctx, "ListProductsByIDs", query, ids)
}

// List returns all products, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	return r.listProducts(ctx, "ListProducts", query)
}

// GetByID retrieves a product by its unique identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (product *domain.Product, err error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`

	ctx, done := database.TraceQuery(ctx, "GetProductByID", query)
	defer func() { done(err) }()

	var p domain.Product
	err = r.pool.QueryRow(ctx, query, id).Scan(&p.ProductID, &p.Name, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) listProducts(ctx context.Context, operation, query string, args ...any) (products []domain.Product, err error) {
	ctx, done := database.TraceQuery(ctx, operation, query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	products = make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err = rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
