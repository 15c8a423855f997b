// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the docchat
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Backend holds the settings the client transport uses to reach the
	// chat backend.
	Backend Backend `envPrefix:"BACKEND_"`

	// Auth holds JWT parameters used by the stub server to issue and
	// verify tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the stub
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged in as the weakest
	// source: it only fills fields environment variables and flags left
	// empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the health endpoint of the stub server.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds the settings for outbound requests to the chat backend.
type Backend struct {
	// URL is the base URL of the backend API
	// (e.g. "http://localhost:8080").
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// RequestTimeout is the default timeout applied to non-streaming
	// requests (e.g. "30s", "1m"). Streaming requests are exempt: their
	// lifetime is bounded by the caller's context instead.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DisableStreaming switches the client's chat calls to the
	// non-streaming endpoint, so every answer arrives in a single
	// response instead of an event stream.
	// Env: BACKEND_DISABLE_STREAMING
	DisableStreaming bool `env:"DISABLE_STREAMING"`
}

// Auth holds JWT token parameters for the stub server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the stub server.
type Server struct {
	// HTTPAddress is the TCP address on which the stub server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// non-streaming request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the full application
// configuration. Sources are merged in order of decreasing precedence:
// environment variables win over command-line flags, which win over the
// optional JSON file; a source only fills fields the stronger sources left
// empty.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
