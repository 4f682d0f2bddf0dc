package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront-insights/internal/domain"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
)

func TestListCustomers(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewCustomerService(repo, newTestLogger())

	repo.On("List", mock.Anything).Return([]domain.User{
		{UserID: "u1", FirstName: "Ada", LastName: "Lovelace"},
	}, nil)

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "u1", customers[0].UserID)
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewCustomerService(repo, newTestLogger())

	repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NotFound("user", "missing"))

	_, err := svc.GetCustomer(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
