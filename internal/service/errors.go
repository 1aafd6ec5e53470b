package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOrderOwner is returned when an order mutation is requested by a
	// user whose orders set does not contain the targeted order.
	ErrNotOrderOwner = errors.New("order does not belong to the user")
)
