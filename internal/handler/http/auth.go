package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSONPassed, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, err.Error(), statusFromError(err))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.SignedString}, http.StatusOK)
}

// signIn authenticates by email and password. Every failure mode — unknown
// email, wrong password, malformed body — collapses into the same 400
// response so that callers cannot probe which part was wrong.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, msgBadCredentials, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("sign-in failed")
		utils.WriteJSONError(w, msgBadCredentials, http.StatusBadRequest)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully signed in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}

// validate resolves the user behind the Authorization header and returns the
// full record. Unlike the order routes this endpoint reports the concrete
// failure reason, because it exists for clients to diagnose their session.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusBadRequest)
		return
	}

	tokenString, err := utils.TokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		utils.WriteJSONError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.UserFromToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
