package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_EmptyBuilder verifies that building with no fragments returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesCollectedErrors verifies that errors recorded while
// collecting fragments are wrapped and returned, with nil config.
func TestBuild_PropagatesCollectedErrors(t *testing.T) {
	b := newConfigBuilder()
	b.errs = append(b.errs, assert.AnError)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstFragmentWins verifies the precedence rule: the backend URL
// from the first fragment survives, while fields only the weaker fragment
// sets still fill in.
func TestBuild_FirstFragmentWins(t *testing.T) {
	b := newConfigBuilder().
		add(&StructuredConfig{Backend: Backend{URL: "http://env-wins:8080"}}).
		add(&StructuredConfig{
			Backend: Backend{URL: "http://flag-loses:9090", RequestTimeout: 10 * time.Second},
			Auth:    Auth{TokenIssuer: "merged-issuer"},
		})

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value
	assert.Equal(t, "http://env-wins:8080", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "merged-issuer", cfg.Auth.TokenIssuer)
}

// TestJSONPath_TakesStrongestSource verifies that when several fragments name
// a config file, the earliest one decides which file is read.
func TestJSONPath_TakesStrongestSource(t *testing.T) {
	b := newConfigBuilder().
		add(&StructuredConfig{JSONFilePath: "env.json"}).
		add(&StructuredConfig{JSONFilePath: "flags.json"})

	assert.Equal(t, "env.json", b.jsonPath())
}

// TestWithJSON_NoPathIsNoop verifies that withJSON adds nothing when no
// earlier source named a config file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()

	assert.Empty(t, b.errs)
	assert.Empty(t, b.fragments)
}

// TestWithJSON_MissingFileFailsBuild verifies that a dangling config file
// path surfaces when the config is built.
func TestWithJSON_MissingFileFailsBuild(t *testing.T) {
	b := newConfigBuilder().
		add(&StructuredConfig{JSONFilePath: "does-not-exist.json"}).
		withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
