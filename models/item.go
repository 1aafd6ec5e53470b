package models

import "time"

// Item represents a catalog entry that users can order.
// Item lifecycle is managed outside this service: there are no create,
// update, or delete routes, only lookups.
type Item struct {
	// ID is the server-assigned unique identifier of the item.
	ID int64 `json:"id"`

	// Title is the unique human-readable name, also usable as a lookup key.
	Title string `json:"title"`

	// CreatedAt is the timestamp when the item was added to the catalog.
	CreatedAt time.Time `json:"createdAt"`

	// Orders holds the orders referencing this item, each expanded with
	// its user. Repository lookups always populate it, with an empty slice
	// when nothing references the item, so the JSON field serializes as []
	// rather than disappearing.
	Orders []Order `json:"orders"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
