package store

import (
	"github.com/MKhiriev/go-shop-api/migrations"
)

// Migrate applies all pending schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
