package models

import "time"

// User represents a shop account. It is both the persisted entity and the
// JSON shape returned by the API.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address used as the lookup key during sign-in.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON response.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// Orders holds the user's orders, each expanded with its item.
	// Repository lookups always populate it, with an empty slice when the
	// user has no orders, so the JSON field serializes as [] rather than
	// disappearing.
	Orders []Order `json:"orders"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// OwnsOrder reports whether the order with the given id belongs to the user,
// judged by the Orders slice loaded alongside the user record.
func (u User) OwnsOrder(orderID int64) bool {
	for _, order := range u.Orders {
		if order.ID == orderID {
			return true
		}
	}
	return false
}
