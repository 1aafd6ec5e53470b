package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// auth is an HTTP middleware that gates the order routes.
//
// It inspects the incoming "Authorization" header, extracts the token (with
// or without a "Bearer " prefix), resolves the full user record behind it via
// [service.AuthService.UserFromToken], and — on success — stores the user in
// the request context under [utils.UserCtxKey] before delegating to the next
// handler. Resolving the whole record up front gives downstream handlers the
// orders set they need for ownership checks without a second lookup.
//
// Any failure — missing header, malformed header, invalid or expired token,
// or a token whose user no longer exists — is answered with HTTP 400 and the
// order routes' fixed error message. The status and message are part of the
// public contract of this API.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
			return
		}

		tokenString, err := utils.TokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.UserFromToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during resolving user from token")
			utils.WriteJSONError(w, msgOrderNotLoggedIn, http.StatusBadRequest)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can run ownership checks without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
