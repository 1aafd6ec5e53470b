package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_insertUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash"}

	query, args, err := insertUserQuery(user).ToSql()
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, []any{"John", "john@example.com", "hash"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id, name, email, password_hash, created_at")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$3")
}

func Test_selectUserQueries_Placeholders(t *testing.T) {
	query, args, err := selectUserByEmailQuery("john@example.com").ToSql()
	require.NoError(t, err)
	require.Equal(t, []any{"john@example.com"}, args)
	assert.Contains(t, strings.ToLower(query), "where email = $1")

	query, args, err = selectUserByIDQuery(42).ToSql()
	require.NoError(t, err)
	require.Equal(t, []any{int64(42)}, args)
	assert.Contains(t, strings.ToLower(query), "where user_id = $1")
	assert.Contains(t, strings.ToLower(query), "order by user_id")
}

func Test_selectOrdersWithItemsQuery_ScopedAndUnscoped(t *testing.T) {
	query, args, err := selectOrdersWithItemsQuery().ToSql()
	require.NoError(t, err)
	require.Empty(t, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "from orders as o")
	require.Contains(t, q, "join items as i on i.item_id = o.item_id")
	require.NotContains(t, q, "where")

	query, args, err = selectOrdersWithItemsQuery(7).ToSql()
	require.NoError(t, err)
	require.Equal(t, []any{int64(7)}, args)
	assert.Contains(t, strings.ToLower(query), "o.user_id in ($1)")
}

func Test_selectOrdersWithUsersQuery_ScopedByItem(t *testing.T) {
	query, args, err := selectOrdersWithUsersQuery(5).ToSql()
	require.NoError(t, err)
	require.Equal(t, []any{int64(5)}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "join users as u on u.user_id = o.user_id")
	require.Contains(t, q, "o.item_id in ($1)")
	require.Contains(t, q, "order by o.order_id")
}

func Test_insertOrderQuery_SQLContainsParts(t *testing.T) {
	order := models.Order{UserID: 1, ItemID: 5, Quantity: 1}

	query, args, err := insertOrderQuery(order).ToSql()
	require.NoError(t, err)

	require.Equal(t, []any{int64(1), int64(5), 1}, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "insert into orders")
	require.Contains(t, q, "returning order_id, user_id, item_id, quantity, created_at")
}

func Test_updateOrderQuantityQuery_ArgOrder(t *testing.T) {
	query, args, err := updateOrderQuantityQuery(10, 1, 3).ToSql()
	require.NoError(t, err)

	// SET argument first, then the WHERE map keys in sorted order.
	require.Equal(t, []any{3, int64(10), int64(1)}, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "update orders set quantity = $1")
	require.Contains(t, q, "order_id = $2")
	require.Contains(t, q, "user_id = $3")
}

func Test_deleteOrderQuery_ArgOrder(t *testing.T) {
	query, args, err := deleteOrderQuery(10, 1).ToSql()
	require.NoError(t, err)

	require.Equal(t, []any{int64(10), int64(1)}, args)
	q := strings.ToLower(query)
	require.Contains(t, q, "delete from orders")
	require.Contains(t, q, "order_id = $1")
	require.Contains(t, q, "user_id = $2")
}
