package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// The catalog is read-only from this service's point of view: rows are
// inserted and maintained by an external process, this repository only looks
// them up (with their orders and ordering users attached).
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// FindItemByID retrieves an item by its primary key together with its
// orders, each expanded with the ordering user.
//
// Error handling:
//   - Empty result set → [ErrItemNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	return r.findItem(ctx, selectItemByIDQuery(itemID))
}

// FindItemByTitle retrieves an item by its unique title together with its
// orders, each expanded with the ordering user.
//
// Error handling matches [itemRepository.FindItemByID].
func (r *itemRepository) FindItemByTitle(ctx context.Context, title string) (models.Item, error) {
	return r.findItem(ctx, selectItemByTitleQuery(title))
}

// GetAllItems returns every catalog item with orders (quantity and user)
// attached. No pagination, mirroring the user listing.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectItemsQuery().ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	ordersByItem, err := r.loadOrdersWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Orders = ordersByItem[items[i].ID]
		if items[i].Orders == nil {
			items[i].Orders = []models.Order{}
		}
	}

	return items, nil
}

func (r *itemRepository) findItem(ctx context.Context, builder interface {
	ToSql() (string, []any, error)
}) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.findItem").Msg("error building select query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Item
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Title, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).
			Str("func", "*itemRepository.findItem").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error scanning item row")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	ordersByItem, err := r.loadOrdersWithUsers(ctx, found.ID)
	if err != nil {
		return models.Item{}, err
	}
	found.Orders = ordersByItem[found.ID]
	if found.Orders == nil {
		found.Orders = []models.Order{}
	}

	return found, nil
}

// loadOrdersWithUsers loads orders joined with their owning users, grouped
// by item id. With no item ids it loads the whole orders table.
func (r *itemRepository) loadOrdersWithUsers(ctx context.Context, itemIDs ...int64) (map[int64][]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectOrdersWithUsersQuery(itemIDs...).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.loadOrdersWithUsers").Msg("error building orders query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.loadOrdersWithUsers").Msg("error querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ordersByItem := make(map[int64][]models.Order)
	for rows.Next() {
		var order models.Order
		var user models.User
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.ItemID, &order.Quantity, &order.CreatedAt,
			&user.Name, &user.Email, &user.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*itemRepository.loadOrdersWithUsers").Msg("error scanning order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		user.ID = order.UserID
		order.User = &user
		ordersByItem[order.ItemID] = append(ordersByItem[order.ItemID], order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ordersByItem, nil
}
