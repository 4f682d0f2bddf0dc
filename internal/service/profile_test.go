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

func TestListProfiles(t *testing.T) {
	repo := new(mockAdminUserRepository)
	svc := NewProfileService(repo, newTestLogger())

	repo.On("List", mock.Anything).Return([]domain.AdminUser{
		{AdminID: "a1", Role: "owner"},
	}, nil)

	profiles, err := svc.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "owner", profiles[0].Role)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(mockAdminUserRepository)
	svc := NewProfileService(repo, newTestLogger())

	repo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NotFound("profile", "missing"))

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
