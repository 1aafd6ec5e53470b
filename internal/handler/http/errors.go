// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when handling the "Authorization" HTTP header.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not contain a usable token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Response messages fixed by the public API contract. Clients match on the
// exact strings, so they must not be reworded.
const (
	msgUserNotFound      = "User not found."
	msgItemNotFound      = "item not found."
	msgBadCredentials    = "Email/Password invalid."
	msgOrderNotLoggedIn  = "You cant order if u are not logged in"
	msgOrderNotOwned     = "order does not belong to the authenticated user"
	msgOrderNotFound     = "order not found"
	msgInvalidJSONPassed = "Invalid JSON was passed"
)
