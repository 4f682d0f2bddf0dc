package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront-insights/pkg/database"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

var userColumnNames = []string{"user_id", "first_name", "last_name", "email", "created_at"}

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return NewUserRepository(mock), mock
}

func TestUserRepository_Count(t *testing.T) {
	repo, mock := newUserRepo(t)
	defer mock.ExpectationsWereMet()

	mock.ExpectQuery(`SELECT count\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestUserRepository_ListByIDs(t *testing.T) {
	repo, mock := newUserRepo(t)
	defer mock.ExpectationsWereMet()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{"user-001"}

	mock.ExpectQuery("FROM users WHERE user_id").
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows(userColumnNames).
			AddRow("user-001", "Ada", "Lovelace", "ada@example.com", now))

	users, err := repo.ListByIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ada Lovelace", users[0].FullName())
}

func TestUserRepository_ListByIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock := newUserRepo(t)
	defer mock.ExpectationsWereMet()

	users, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newUserRepo(t)
	defer mock.ExpectationsWereMet()

	mock.ExpectQuery("FROM users WHERE user_id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(userColumnNames))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
