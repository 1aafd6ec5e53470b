package models

import "time"

// Order links a user and an item with a quantity. The same type serves both
// expansion directions: user listings populate Item, item listings populate
// User. Whichever side is nil is omitted from the JSON output.
type Order struct {
	// ID is the server-assigned unique identifier of the order.
	ID int64 `json:"id"`

	// UserID references the user who owns the order.
	UserID int64 `json:"userId"`

	// ItemID references the ordered item.
	ItemID int64 `json:"itemId"`

	// Quantity is the ordered amount. New orders always start at 1 and are
	// changed afterwards through the quantity-update route.
	Quantity int `json:"quantity"`

	// CreatedAt is the timestamp when the order was placed.
	CreatedAt time.Time `json:"createdAt"`

	// Item is the expanded item record, populated when the order is loaded
	// as part of a user lookup.
	Item *Item `json:"item,omitempty"`

	// User is the expanded user record, populated when the order is loaded
	// as part of an item lookup.
	User *User `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
