package models

// ChatRequest is the payload of the chat endpoint. The same shape is used for
// the streaming and the non-streaming variant; Stream selects between them.
type ChatRequest struct {
	// SessionID identifies the conversation the question belongs to.
	SessionID string `json:"session_id"`

	// Question is the user's prompt.
	Question string `json:"question"`

	// ContextID optionally overrides the session's bound knowledge context.
	ContextID string `json:"context_id,omitempty"`

	// Stream requests an event-stream response of partial answer tokens
	// instead of a single complete answer.
	Stream bool `json:"stream"`
}

// ChatResponse is the non-streaming answer of the chat endpoint.
type ChatResponse struct {
	// Answer is the complete generated answer text.
	Answer string `json:"answer"`

	// SessionID echoes the conversation the answer belongs to.
	SessionID string `json:"session_id,omitempty"`
}
