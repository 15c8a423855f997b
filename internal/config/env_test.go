package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesFields verifies that env variables are mapped onto
// the structured config via the env/envPrefix tags.
func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:8080")
	t.Setenv("BACKEND_REQUEST_TIMEOUT", "45s")
	t.Setenv("BACKEND_DISABLE_STREAMING", "true")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("APP_VERSION", "0.9.0")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://backend:8080", cfg.Backend.URL)
	assert.Equal(t, 45*time.Second, cfg.Backend.RequestTimeout)
	assert.True(t, cfg.Backend.DisableStreaming)
	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "0.9.0", cfg.App.Version)
}

// TestParseEnv_EmptyEnvironment verifies that an empty environment leaves the
// config at its zero value without error.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseEnv_InvalidDuration verifies that an unparseable duration value
// surfaces as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("BACKEND_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing environment configs")
}
