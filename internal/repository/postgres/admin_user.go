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

const adminUserColumns = `admin_id, first_name, last_name, email, role, created_at`

// AdminUserRepository implements repository.AdminUserRepository using
// PostgreSQL.
type AdminUserRepository struct {
	pool database.DBTX
}

// NewAdminUserRepository creates a new PostgreSQL-backed admin user
// repository.
func NewAdminUserRepository(pool database.DBTX) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

// List returns all admin accounts, newest first.
func (r *AdminUserRepository) List(ctx context.Context) (admins []domain.AdminUser, err error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users ORDER BY created_at DESC`

	ctx, done := database.TraceQuery(ctx, "ListAdminUsers", query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	admins = make([]domain.AdminUser, 0)
	for rows.Next() {
		var a domain.AdminUser
		if err = rows.Scan(&a.AdminID, &a.FirstName, &a.LastName, &a.Email, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin user row: %w", err)
		}
		admins = append(admins, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin user rows: %w", err)
	}

	return admins, nil
}

// GetByID retrieves an admin account by its unique identifier.
func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (admin *domain.AdminUser, err error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE admin_id = $1`

	ctx, done := database.TraceQuery(ctx, "GetAdminUserByID", query)
	defer func() { done(err) }()

	var a domain.AdminUser
	err = r.pool.QueryRow(ctx, query, id).Scan(&a.AdminID, &a.FirstName, &a.LastName, &a.Email, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("profile", id)
		}
		return nil, fmt.Errorf("scan admin user: %w", err)
	}

	return &a, nil
}
