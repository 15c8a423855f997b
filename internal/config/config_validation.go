// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged config itself is permissive: missing values are defaulted by the
// per-binary views ([GetClientConfig], [GetServerConfig]), which run their own
// stricter validation.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BackendURL == "" || !strings.Contains(cfg.BackendURL, "://") {
		return ErrInvalidBackendConfigs
	}
	if cfg.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
