package service

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UserFromToken(ctx context.Context, tokenString string) (models.User, error)
}

// UserService exposes user listing and lookup.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemService exposes catalog listing and lookup. GetItem accepts either a
// numeric id or an item title as the key.
type ItemService interface {
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, key string) (models.Item, error)
}

// OrderService handles order placement and mutation on behalf of an
// authenticated requester. Every operation returns the requester's refreshed
// user record, which is what the order routes respond with.
type OrderService interface {
	PlaceOrder(ctx context.Context, requester models.User, userID, itemID int64) (models.User, error)
	ChangeQuantity(ctx context.Context, requester models.User, orderID int64, quantity int) (models.User, error)
	RemoveOrder(ctx context.Context, requester models.User, orderID int64) (models.User, error)
}
