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

const userColumns = `user_id, first_name, last_name, email, created_at`

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	pool database.DBTX
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool database.DBTX) *UserRepository {
	return &UserRepository{pool: pool}
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (count int, err error) {
	query := `SELECT count(*) FROM users`

	ctx, done := database.TraceQuery(ctx, "CountUsers", query)
	defer func() { done(err) }()

	if err = r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

// ListByIDs returns the users with the given identifiers.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1)`

	return r.listUsers(ctx, "ListUsersByIDs", query, ids)
}

// List returns all users, newest first.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	return r.listUsers(ctx, "ListUsers", query)
}

// GetByID retrieves a user by its unique identifier.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user *domain.User, err error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	ctx, done := database.TraceQuery(ctx, "GetUserByID", query)
	defer func() { done(err) }()

	var u domain.User
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&u.UserID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) listUsers(ctx context.Context, operation, query string, args ...any) (users []domain.User, err error) {
	ctx, done := database.TraceQuery(ctx, operation, query)
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	users = make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}
