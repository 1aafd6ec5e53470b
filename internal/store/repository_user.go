package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table, loading
// the user's orders (with items) alongside every lookup.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(user).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Stringer("classification", r.db.errorClassificator.Classify(err)).
				Msg("error inserting user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves a user record by its unique email together with
// the user's orders, each expanded with its item.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, selectUserByEmailQuery(email))
}

// FindUserByID retrieves a user record by its primary key together with
// the user's orders, each expanded with its item.
//
// Error handling matches [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, selectUserByIDQuery(userID))
}

// GetAllUsers returns every user record with orders (quantity and item)
// attached. There is no pagination: the endpoint this backs exposes the
// full listing.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery().ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	ordersByUser, err := r.loadOrdersWithItems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Orders = ordersByUser[users[i].ID]
		if users[i].Orders == nil {
			users[i].Orders = []models.Order{}
		}
	}

	return users, nil
}

// findUser runs a single-user lookup built by the caller and attaches the
// user's orders on success.
func (r *userRepository) findUser(ctx context.Context, builder interface {
	ToSql() (string, []any, error)
}) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*userRepository.findUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	ordersByUser, err := r.loadOrdersWithItems(ctx, found.ID)
	if err != nil {
		return models.User{}, err
	}
	found.Orders = ordersByUser[found.ID]
	if found.Orders == nil {
		found.Orders = []models.Order{}
	}

	return found, nil
}

// loadOrdersWithItems loads orders joined with items, grouped by user id.
// With no user ids it loads the whole orders table.
func (r *userRepository) loadOrdersWithItems(ctx context.Context, userIDs ...int64) (map[int64][]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectOrdersWithItemsQuery(userIDs...).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.loadOrdersWithItems").Msg("error building orders query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.loadOrdersWithItems").Msg("error querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ordersByUser := make(map[int64][]models.Order)
	for rows.Next() {
		var order models.Order
		var item models.Item
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.ItemID, &order.Quantity, &order.CreatedAt,
			&item.Title, &item.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*userRepository.loadOrdersWithItems").Msg("error scanning order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		item.ID = order.ItemID
		order.Item = &item
		ordersByUser[order.UserID] = append(ordersByUser[order.UserID], order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ordersByUser, nil
}
