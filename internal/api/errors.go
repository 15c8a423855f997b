package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/docchat/docchat/models"
	"github.com/go-resty/resty/v2"
)

// Sentinel errors for the status codes callers commonly branch on.
// They are wrapped into the returned *[APIError] so both errors.Is checks
// and message inspection work.
var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError is the single error type produced by the transport. It covers both
// server-reported failures (non-2xx responses, StatusCode > 0) and
// transport-level failures (connection errors, malformed responses,
// StatusCode == 0).
type APIError struct {
	// StatusCode is the HTTP status of a server-reported failure, or zero
	// for transport-level failures.
	StatusCode int

	// Message is a human-readable description: the server's error message
	// when one could be decoded, a status-derived fallback otherwise, or
	// the wrapped transport failure.
	Message string

	// Err is the underlying error, when any.
	Err error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// newTransportError wraps a transport-level failure (network error, malformed
// response) into an *APIError. The "request failed" prefix distinguishes it
// from a server-reported message.
func newTransportError(err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

// mapAPIError normalizes a non-2xx response into an *APIError. The structured
// error body is preferred; when it cannot be decoded the message falls back
// to the status line.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return newStatusError(resp.StatusCode(), resp.Body())
}

func newStatusError(statusCode int, body []byte) *APIError {
	message := decodeErrorBody(body)
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	}

	apiErr := &APIError{StatusCode: statusCode, Message: message}
	switch statusCode {
	case http.StatusUnauthorized:
		apiErr.Err = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	}

	return apiErr
}

func decodeErrorBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if text := errResp.Text(); text != "" {
			return text
		}
	}

	return strings.TrimSpace(string(body))
}
