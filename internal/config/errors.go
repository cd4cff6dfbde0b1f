package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a missing token secret or non-positive lifetimes).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidMailConfigs indicates an unknown mail transport or a
	// transport missing its required settings.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
