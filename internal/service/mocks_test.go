package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-shop-api/models"
)

// errNotConfigured signals a stub method the test did not expect to be called.
var errNotConfigured = errors.New("stub method not configured")

type stubUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	getAllUsersFn     func(ctx context.Context) ([]models.User, error)
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if s.createUserFn == nil {
		return models.User{}, errNotConfigured
	}
	return s.createUserFn(ctx, user)
}

func (s *stubUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if s.findUserByEmailFn == nil {
		return models.User{}, errNotConfigured
	}
	return s.findUserByEmailFn(ctx, email)
}

func (s *stubUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if s.findUserByIDFn == nil {
		return models.User{}, errNotConfigured
	}
	return s.findUserByIDFn(ctx, userID)
}

func (s *stubUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if s.getAllUsersFn == nil {
		return nil, errNotConfigured
	}
	return s.getAllUsersFn(ctx)
}

type stubItemRepository struct {
	findItemByIDFn    func(ctx context.Context, itemID int64) (models.Item, error)
	findItemByTitleFn func(ctx context.Context, title string) (models.Item, error)
	getAllItemsFn     func(ctx context.Context) ([]models.Item, error)
}

func (s *stubItemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	if s.findItemByIDFn == nil {
		return models.Item{}, errNotConfigured
	}
	return s.findItemByIDFn(ctx, itemID)
}

func (s *stubItemRepository) FindItemByTitle(ctx context.Context, title string) (models.Item, error) {
	if s.findItemByTitleFn == nil {
		return models.Item{}, errNotConfigured
	}
	return s.findItemByTitleFn(ctx, title)
}

func (s *stubItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	if s.getAllItemsFn == nil {
		return nil, errNotConfigured
	}
	return s.getAllItemsFn(ctx)
}

type stubOrderRepository struct {
	createOrderFn         func(ctx context.Context, order models.Order) (models.Order, error)
	updateOrderQuantityFn func(ctx context.Context, orderID int64, userID int64, quantity int) error
	deleteOrderFn         func(ctx context.Context, orderID int64, userID int64) error
}

func (s *stubOrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if s.createOrderFn == nil {
		return models.Order{}, errNotConfigured
	}
	return s.createOrderFn(ctx, order)
}

func (s *stubOrderRepository) UpdateOrderQuantity(ctx context.Context, orderID int64, userID int64, quantity int) error {
	if s.updateOrderQuantityFn == nil {
		return errNotConfigured
	}
	return s.updateOrderQuantityFn(ctx, orderID, userID, quantity)
}

func (s *stubOrderRepository) DeleteOrder(ctx context.Context, orderID int64, userID int64) error {
	if s.deleteOrderFn == nil {
		return errNotConfigured
	}
	return s.deleteOrderFn(ctx, orderID, userID)
}
