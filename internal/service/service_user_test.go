package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUsers_Delegates(t *testing.T) {
	userRepo := &stubUserRepository{
		getAllUsersFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	users := NewUserService(userRepo, logger.Nop())

	all, err := users.GetAllUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetUserByEmail_Success(t *testing.T) {
	userRepo := &stubUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
	}
	users := NewUserService(userRepo, logger.Nop())

	user, err := users.GetUserByEmail(context.Background(), "john@example.com")

	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestGetUserByEmail_EmptyEmail(t *testing.T) {
	users := NewUserService(&stubUserRepository{}, logger.Nop())

	_, err := users.GetUserByEmail(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	userRepo := &stubUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	users := NewUserService(userRepo, logger.Nop())

	_, err := users.GetUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
