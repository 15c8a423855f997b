package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view consumed by the stub server.
type ServerConfig struct {
	// HTTPAddress is the TCP address the server listens on.
	HTTPAddress string
	// RequestTimeout is the maximum duration for inbound non-streaming
	// requests.
	RequestTimeout time.Duration
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in issued tokens.
	TokenIssuer string
	// TokenDuration is the validity period of issued tokens.
	TokenDuration time.Duration
	// Version is the version string reported by the health endpoint.
	Version string
}

// GetServerConfig builds and validates a stub-server config view from the
// merged structured configuration, applying development defaults for any
// unset value so the server starts with zero configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.Auth.TokenSignKey,
		TokenIssuer:    cfg.Auth.TokenIssuer,
		TokenDuration:  cfg.Auth.TokenDuration,
		Version:        cfg.App.Version,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = "localhost:8080"
	}
	if serverCfg.RequestTimeout <= 0 {
		serverCfg.RequestTimeout = defaultRequestTimeout
	}
	if serverCfg.TokenSignKey == "" {
		serverCfg.TokenSignKey = "docchat-dev-sign-key"
	}
	if serverCfg.TokenIssuer == "" {
		serverCfg.TokenIssuer = "docchat-stubserver"
	}
	if serverCfg.TokenDuration <= 0 {
		serverCfg.TokenDuration = 24 * time.Hour
	}

	return serverCfg, serverCfg.validate()
}
