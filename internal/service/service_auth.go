package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that email and password are non-empty, derives a bcrypt hash
// from the password, and delegates persistence to the UserRepository. The
// plaintext password never leaves this method.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that email and password are non-empty, looks up the account
// by email, and verifies the password against the stored bcrypt hash.
//
// Returns the authenticated user record (with orders and items) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
//
// Callers that must not leak which part failed (the sign-in route) collapse
// the lookup failure and ErrWrongPassword into a single response.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserFromToken resolves the full user record behind a raw token string.
//
// The two failure modes stay distinct on purpose:
//   - ErrTokenIsExpiredOrInvalid — the token itself failed verification;
//   - store.ErrNoUserWasFound — the token was valid but the account behind
//     it no longer exists.
func (a *authService) UserFromToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("token subject lookup failed")
		return models.User{}, err
	}

	return user, nil
}
