package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// Storages bundles every repository together with the underlying database
// handle. One instance is created at startup and injected into the service
// layer; Close releases the shared connection pool on shutdown.
type Storages struct {
	UserRepository  UserRepository
	ItemRepository  ItemRepository
	OrderRepository OrderRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		ItemRepository:  NewItemRepository(db, log),
		OrderRepository: NewOrderRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
