package store

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// UserRepository provides persistence operations for user accounts.
// Lookups return the user together with their orders, each expanded with
// the ordered item.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ItemRepository provides read-only access to the item catalog.
// Lookups return the item together with its orders, each expanded with
// the ordering user. Item creation and mutation happen outside this service.
type ItemRepository interface {
	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)
	FindItemByTitle(ctx context.Context, title string) (models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
}

// OrderRepository provides persistence operations for orders. Quantity
// updates and deletions are scoped by both order and user id so that a
// mismatch surfaces as [ErrOrderNotFound] instead of touching another
// user's row.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	UpdateOrderQuantity(ctx context.Context, orderID int64, userID int64, quantity int) error
	DeleteOrder(ctx context.Context, orderID int64, userID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Used for diagnostics when repositories log unexpected driver
// errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
