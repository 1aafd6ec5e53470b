package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// orderService is the concrete implementation of OrderService.
//
// Mutations (quantity change, removal) enforce the ownership invariant: the
// targeted order must appear in the requester's loaded orders set. Placement
// does NOT check that the order's userId matches the requester — the API has
// historically allowed an authenticated user to place orders for any user id,
// and that behaviour is kept for compatibility.
type orderService struct {
	orderRepository store.OrderRepository
	userRepository  store.UserRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService backed by the given repositories.
// The user repository is needed because every order route responds with the
// requester's refreshed user record.
func NewOrderService(orderRepository store.OrderRepository, userRepository store.UserRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		logger:          logger,
	}
}

// PlaceOrder creates a new order with quantity fixed at 1 for the given user
// and item ids, then returns the requester's refreshed record.
//
// Returns:
//   - ErrInvalidDataProvided if either id is missing.
//   - store.ErrInvalidOrderReference if the user or item does not exist.
//   - A wrapped storage error for anything else.
func (o *orderService) PlaceOrder(ctx context.Context, requester models.User, userID, itemID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || itemID == 0 {
		log.Error().Int64("userId", userID).Int64("itemId", itemID).Msg("invalid order data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	created, err := o.orderRepository.CreateOrder(ctx, models.Order{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	})
	if err != nil {
		log.Err(err).Int64("userId", userID).Int64("itemId", itemID).Msg("order creation ended with error")
		return models.User{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	log.Debug().Int64("orderId", created.ID).Int64("requesterId", requester.ID).Msg("order placed")

	return o.refreshRequester(ctx, requester)
}

// ChangeQuantity sets a new quantity on an order owned by the requester and
// returns the requester's refreshed record.
//
// Returns:
//   - ErrNotOrderOwner if the order is not in the requester's orders set;
//     the repository is never called in that case, so a foreign order is
//     guaranteed untouched.
//   - store.ErrOrderNotFound if the row disappeared between the ownership
//     check and the update.
func (o *orderService) ChangeQuantity(ctx context.Context, requester models.User, orderID int64, quantity int) (models.User, error) {
	log := logger.FromContext(ctx)

	if !requester.OwnsOrder(orderID) {
		log.Error().Int64("orderId", orderID).Int64("requesterId", requester.ID).Msg("quantity change on foreign order rejected")
		return models.User{}, ErrNotOrderOwner
	}

	if err := o.orderRepository.UpdateOrderQuantity(ctx, orderID, requester.ID, quantity); err != nil {
		log.Err(err).Int64("orderId", orderID).Msg("order quantity update ended with error")
		return models.User{}, fmt.Errorf("order quantity update ended with error: %w", err)
	}

	return o.refreshRequester(ctx, requester)
}

// RemoveOrder deletes an order owned by the requester and returns the
// requester's refreshed record.
//
// Ownership failures behave as in [orderService.ChangeQuantity]; a missing
// row surfaces as store.ErrOrderNotFound so the transport layer can answer
// 404 instead of pretending the delete succeeded.
func (o *orderService) RemoveOrder(ctx context.Context, requester models.User, orderID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if !requester.OwnsOrder(orderID) {
		log.Error().Int64("orderId", orderID).Int64("requesterId", requester.ID).Msg("deletion of foreign order rejected")
		return models.User{}, ErrNotOrderOwner
	}

	if err := o.orderRepository.DeleteOrder(ctx, orderID, requester.ID); err != nil {
		log.Err(err).Int64("orderId", orderID).Msg("order deletion ended with error")
		return models.User{}, fmt.Errorf("order deletion ended with error: %w", err)
	}

	return o.refreshRequester(ctx, requester)
}

// refreshRequester reloads the requesting user so the response reflects the
// mutation that just happened.
func (o *orderService) refreshRequester(ctx context.Context, requester models.User) (models.User, error) {
	refreshed, err := o.userRepository.FindUserByID(ctx, requester.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", requester.ID).Msg("requester refresh failed")
		return models.User{}, fmt.Errorf("requester refresh failed: %w", err)
	}

	return refreshed, nil
}
