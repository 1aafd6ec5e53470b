package config

import "errors"

// Sentinel errors returned by config validation. Callers can match against
// them with [errors.Is].
var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrNoServerAddress is returned when the HTTP listen address resolved
	// to an empty string after merging all sources.
	ErrNoServerAddress = errors.New("server address is not configured")
)
