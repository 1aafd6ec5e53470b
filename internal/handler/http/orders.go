package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

type createOrderRequest struct {
	UserID int64 `json:"userId"`
	ItemID int64 `json:"itemId"`
}

type updateOrderRequest struct {
	NewQuantity int `json:"newQuantity"`
}

// createOrder places a new order with quantity 1 for the user and item ids
// taken from the request body. The body's userId is used as-is even when it
// differs from the authenticated user — the contract predates this server
// and has never required them to match. The response is the requesting
// user's refreshed record, not the created order.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requester, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createOrder").Msg("no authenticated user in context")
		utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSONPassed, http.StatusBadRequest)
		return
	}

	refreshed, err := h.services.OrderService.PlaceOrder(ctx, requester, req.UserID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid order data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrInvalidOrderReference):
			log.Err(err).Msg("order references a missing user or item")
			utils.WriteJSONError(w, store.ErrInvalidOrderReference.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during order creation")
			utils.WriteJSONError(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, refreshed, http.StatusOK)
}

// updateOrder changes the quantity of an order owned by the authenticated
// user. Targeting someone else's order is answered with 403 and leaves the
// order untouched.
func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requester, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateOrder").Msg("no authenticated user in context")
		utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid order id")
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSONPassed, http.StatusBadRequest)
		return
	}

	refreshed, err := h.services.OrderService.ChangeQuantity(ctx, requester, orderID, req.NewQuantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotOrderOwner):
			log.Err(err).Int64("orderId", orderID).Msg("order ownership check failed")
			utils.WriteJSONError(w, msgOrderNotOwned, http.StatusForbidden)
			return
		case errors.Is(err, store.ErrOrderNotFound):
			log.Err(err).Int64("orderId", orderID).Msg("order not found")
			utils.WriteJSONError(w, msgOrderNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during order update")
			utils.WriteJSONError(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, refreshed, http.StatusOK)
}

// deleteOrder removes an order owned by the authenticated user. An order id
// that is absent from the store — even after the ownership check passed —
// is answered with 404 so that nothing is ever reported deleted when no row
// was removed.
func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requester, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteOrder").Msg("no authenticated user in context")
		utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid order id")
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	refreshed, err := h.services.OrderService.RemoveOrder(ctx, requester, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotOrderOwner):
			log.Err(err).Int64("orderId", orderID).Msg("order ownership check failed")
			utils.WriteJSONError(w, msgOrderNotOwned, http.StatusForbidden)
			return
		case errors.Is(err, store.ErrOrderNotFound):
			log.Err(err).Int64("orderId", orderID).Msg("order not found")
			utils.WriteJSONError(w, msgOrderNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during order deletion")
			utils.WriteJSONError(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, refreshed, http.StatusOK)
}
