package config

import (
	"fmt"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// ClientConfig is the configuration view consumed by the interactive client:
// where the backend lives and how long non-streaming requests may take.
type ClientConfig struct {
	// BackendURL is the base URL of the chat backend API.
	BackendURL string
	// RequestTimeout is the default timeout for outbound non-streaming
	// requests.
	RequestTimeout time.Duration
	// DisableStreaming makes the chat screen use the non-streaming
	// endpoint: answers render in one piece instead of fragment by
	// fragment.
	DisableStreaming bool
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BackendURL:       cfg.Backend.URL,
		RequestTimeout:   cfg.Backend.RequestTimeout,
		DisableStreaming: cfg.Backend.DisableStreaming,
	}
	if clientCfg.BackendURL == "" {
		clientCfg.BackendURL = "http://localhost:8080"
	}
	if clientCfg.RequestTimeout <= 0 {
		clientCfg.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
