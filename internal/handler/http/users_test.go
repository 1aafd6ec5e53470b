package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUsers_ReturnsUsersWithOrders(t *testing.T) {
	users := &stubUserService{
		getAllUsersFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 1, Name: "John", Email: "john@example.com", Orders: []models.Order{
					{ID: 10, UserID: 1, ItemID: 5, Quantity: 1, Item: &models.Item{ID: 5, Title: "Widget"}},
				}},
				{ID: 2, Name: "Jane", Email: "jane@example.com"},
			}, nil
		},
	}
	router := newTestHandler(nil, users, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Len(t, got[0].Orders, 1)
	assert.Equal(t, "Widget", got[0].Orders[0].Item.Title)
	assert.Empty(t, got[1].Orders)
}

func TestGetAllUsers_EmptyListIsJSONArray(t *testing.T) {
	users := &stubUserService{
		getAllUsersFn: func(ctx context.Context) ([]models.User, error) {
			return nil, nil
		},
	}
	router := newTestHandler(nil, users, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetAllUsers_ServiceFailure(t *testing.T) {
	users := &stubUserService{
		getAllUsersFn: func(ctx context.Context) ([]models.User, error) {
			return nil, errors.New("db failure")
		},
	}
	router := newTestHandler(nil, users, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserByEmail_Success(t *testing.T) {
	users := &stubUserService{
		getUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			assert.Equal(t, "john@example.com", email)
			return models.User{ID: 1, Email: email}, nil
		},
	}
	router := newTestHandler(nil, users, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users/john@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	users := &stubUserService{
		getUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	router := newTestHandler(nil, users, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/users/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found."}`, rec.Body.String())
}
