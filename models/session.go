package models

import "time"

// Session represents a single chat conversation. A session may optionally be
// bound to a knowledge context; messages sent within it are answered against
// that context's documents.
type Session struct {
	// SessionID is the unique identifier of the session.
	SessionID string `json:"session_id"`

	// ContextID is the knowledge context this session is bound to.
	// Empty for free-form conversations.
	ContextID string `json:"context_id,omitempty"`

	// Title is the user-visible session title. Servers typically derive it
	// from the first question when the client leaves it empty.
	Title string `json:"title"`

	// CreatedAt is the timestamp when the session was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}
