package config

import "errors"

// validate checks the merged configuration for values the application cannot
// run without. It is called once by the config builder after all sources
// have been merged.
//
// The token signing key check exists deliberately: issuing tokens with an
// empty secret would make every session forgeable, so the process refuses
// to start instead.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}

	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}

	return errors.Join(errs...)
}
