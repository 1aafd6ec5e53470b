// Package config loads and validates the application configuration.
//
// Values are collected from three sources — environment variables (with an
// optional .env preload), command-line flags, and an optional JSON file —
// and merged in that order, with later non-zero values filling gaps left by
// earlier sources. Built-in defaults fill whatever remains unset after the
// merge, and the result is validated before use.
package config
