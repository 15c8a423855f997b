// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the `env` and `envPrefix` tags on [StructuredConfig] and its nested
// sections, e.g. BACKEND_URL or AUTH_TOKEN_SIGN_KEY.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment configs: %w", err)
	}

	return nil
}
