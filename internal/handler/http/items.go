package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.GetAllItems(ctx)
	if err != nil {
		log.Err(err).Msg("error listing items")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// getItem looks an item up by the {key} path segment: a numeric key is
// treated as the item id, anything else as the unique title.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	item, err := h.services.ItemService.GetItem(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Err(err).Str("key", key).Msg("item not found")
			utils.WriteJSONError(w, msgItemNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Str("key", key).Msg("error looking up item")
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
