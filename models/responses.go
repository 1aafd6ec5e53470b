package models

// AuthResponse is the body returned by the register and sign-in routes:
// the authenticated user record together with a freshly issued token.
type AuthResponse struct {
	// User is the full user record, including orders expanded with items.
	User User `json:"user"`

	// Token is the compact JWS string the client sends back in the
	// Authorization header on subsequent requests.
	Token string `json:"token"`
}

// ErrorResponse is the JSON error envelope used by every failing route.
type ErrorResponse struct {
	// Error is the human-readable failure message.
	Error string `json:"error"`
}
