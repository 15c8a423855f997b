package models

// ErrorResponse is the structured error body returned by the server for
// failing requests. Servers in the wild use either "detail" or "error" as the
// message key, so both are decoded; [ErrorResponse.Text] picks whichever is
// present.
type ErrorResponse struct {
	// Detail is the primary error message field.
	Detail string `json:"detail,omitempty"`

	// Err is the alternative error message field.
	Err string `json:"error,omitempty"`
}

// Text returns the first non-empty message field, or "" when the body carried
// no recognizable message.
func (e ErrorResponse) Text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Err
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	// Status is "ok" when the service and its collaborators are reachable.
	Status string `json:"status"`

	// Version is the semantic version of the running server.
	Version string `json:"version,omitempty"`
}

// UploadResult reports the outcome of a document upload into a context.
type UploadResult struct {
	// Document describes the stored file.
	Document Document `json:"document"`

	// Chunks is the number of retrieval chunks the server split the
	// document into, when reported.
	Chunks int `json:"chunks,omitempty"`
}
