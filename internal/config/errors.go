package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid client backend settings
	// (for example, a missing backend URL).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidServerConfigs indicates invalid stub server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a missing sign key or zero token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
