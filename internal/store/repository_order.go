package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/jackc/pgerrcode"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Mutations are always scoped by both order_id and
// user_id: the WHERE clause is the second line of defence behind the
// service-layer ownership check, so a stale or hostile id combination
// affects zero rows and surfaces as [ErrOrderNotFound].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists a new order row and returns it with server-assigned
// fields (ID, CreatedAt). The caller decides the quantity; the service layer
// fixes it at 1 for newly placed orders.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrInvalidOrderReference]
//     (the referenced user or item does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertOrderQuery(order).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error building insert query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Order
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.UserID, &created.ItemID, &created.Quantity, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Order{}, ErrInvalidOrderReference
		default:
			log.Err(err).
				Str("func", "*orderRepository.CreateOrder").
				Stringer("classification", r.db.errorClassificator.Classify(err)).
				Msg("error inserting order")
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// UpdateOrderQuantity sets the quantity of the order identified by orderID
// and owned by userID.
//
// Error handling:
//   - Zero affected rows → [ErrOrderNotFound] (no such order, or it belongs
//     to a different user).
//   - Any driver-level error → wrapped as a statement execution failure.
func (r *orderRepository) UpdateOrderQuantity(ctx context.Context, orderID int64, userID int64, quantity int) error {
	log := logger.FromContext(ctx)

	query, args, err := updateOrderQuantityQuery(orderID, userID, quantity).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderQuantity").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.UpdateOrderQuantity").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error updating order quantity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// DeleteOrder removes the order identified by orderID and owned by userID.
//
// Error handling matches [orderRepository.UpdateOrderQuantity]: zero
// affected rows → [ErrOrderNotFound], so a delete of an already-removed
// order is reported rather than silently succeeding.
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteOrderQuery(orderID, userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.DeleteOrder").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error deleting order")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
