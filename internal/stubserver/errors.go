package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/docchat/docchat/models"
)

var (
	// ErrEmptyAuthorizationHeader indicates the Authorization header is missing.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	// ErrInvalidAuthorizationHeader indicates the Authorization header does not
	// follow the "<scheme> <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyToken indicates the Authorization header carries no token.
	ErrEmptyToken = errors.New("empty token")
)

// writeError sends a JSON error body with the given status. The body uses the
// "detail" key so clients can surface the message verbatim.
func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}

// writeJSON sends body as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
