package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the session credential issued on registration and sign-in.
//
// The embedded [jwt.Token] carries the parsed low-level token, while
// [jwt.RegisteredClaims] exposes the standard claim set. SignedString is the
// compact form handed to clients in the Authorization header; UserID caches
// the numeric "sub" claim so authenticated handlers do not re-parse it on
// every access.
type Token struct {
	// Token is the parsed JWT, kept for signing and claim inspection.
	// Never serialized: clients only ever see the compact string form.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds the RFC 7519 claim set
	// (sub, exp, iat, nbf, iss, aud, jti).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token,
	// base64url header.payload.signature. Retrieve it via [Token.String].
	SignedString string `json:"-"`

	// UserID is the account id decoded from the "sub" claim, cached
	// server-side after parsing.
	UserID int64 `json:"-"`
}

// GetUserID reads the "sub" claim and decodes it as a base-10 int64 account
// id. It fails when the claim is absent, empty, or not numeric.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
