package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($1-style) placeholders. Every repository query is built through it so
// that argument numbering stays consistent.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func insertUserQuery(user models.User) sq.InsertBuilder {
	return psql.Insert("users").
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, name, email, password_hash, created_at")
}

func selectUsersQuery() sq.SelectBuilder {
	return psql.Select("user_id", "name", "email", "password_hash", "created_at").
		From("users").
		OrderBy("user_id")
}

func selectUserByEmailQuery(email string) sq.SelectBuilder {
	return selectUsersQuery().Where(sq.Eq{"email": email})
}

func selectUserByIDQuery(userID int64) sq.SelectBuilder {
	return selectUsersQuery().Where(sq.Eq{"user_id": userID})
}

// selectOrdersWithItemsQuery loads orders joined with their items.
// With no arguments it covers the whole orders table (user listing);
// with user ids it is scoped to those users.
func selectOrdersWithItemsQuery(userIDs ...int64) sq.SelectBuilder {
	query := psql.Select(
		"o.order_id", "o.user_id", "o.item_id", "o.quantity", "o.created_at",
		"i.title", "i.created_at").
		From("orders AS o").
		Join("items AS i ON i.item_id = o.item_id").
		OrderBy("o.order_id")

	if len(userIDs) > 0 {
		query = query.Where(sq.Eq{"o.user_id": userIDs})
	}

	return query
}

func selectItemsQuery() sq.SelectBuilder {
	return psql.Select("item_id", "title", "created_at").
		From("items").
		OrderBy("item_id")
}

func selectItemByIDQuery(itemID int64) sq.SelectBuilder {
	return selectItemsQuery().Where(sq.Eq{"item_id": itemID})
}

func selectItemByTitleQuery(title string) sq.SelectBuilder {
	return selectItemsQuery().Where(sq.Eq{"title": title})
}

// selectOrdersWithUsersQuery loads orders joined with their owning users.
// With no arguments it covers the whole orders table (item listing);
// with item ids it is scoped to those items.
func selectOrdersWithUsersQuery(itemIDs ...int64) sq.SelectBuilder {
	query := psql.Select(
		"o.order_id", "o.user_id", "o.item_id", "o.quantity", "o.created_at",
		"u.name", "u.email", "u.created_at").
		From("orders AS o").
		Join("users AS u ON u.user_id = o.user_id").
		OrderBy("o.order_id")

	if len(itemIDs) > 0 {
		query = query.Where(sq.Eq{"o.item_id": itemIDs})
	}

	return query
}

func insertOrderQuery(order models.Order) sq.InsertBuilder {
	return psql.Insert("orders").
		Columns("user_id", "item_id", "quantity").
		Values(order.UserID, order.ItemID, order.Quantity).
		Suffix("RETURNING order_id, user_id, item_id, quantity, created_at")
}

func updateOrderQuantityQuery(orderID int64, userID int64, quantity int) sq.UpdateBuilder {
	return psql.Update("orders").
		Set("quantity", quantity).
		Where(sq.Eq{"order_id": orderID, "user_id": userID})
}

func deleteOrderQuery(orderID int64, userID int64) sq.DeleteBuilder {
	return psql.Delete("orders").
		Where(sq.Eq{"order_id": orderID, "user_id": userID})
}
