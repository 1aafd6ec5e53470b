package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// userService is the concrete implementation of UserService: thin listing
// and lookup delegation to the user repository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetAllUsers returns every user with orders (quantity and item) attached.
func (u *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// GetUserByEmail returns the user with the given email, with orders and
// items attached. Propagates store.ErrNoUserWasFound for absent accounts.
func (u *userService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}
