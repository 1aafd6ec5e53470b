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

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := chi.URLParam(r, "email")

	user, err := h.services.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("email", email).Msg("user not found")
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Str("email", email).Msg("error looking up user")
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
