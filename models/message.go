package models

import "time"

// Message roles as stored in a chat session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one entry of a chat session history.
type Message struct {
	// MessageID is the unique identifier of the message.
	MessageID string `json:"message_id,omitempty"`

	// SessionID is the session this message belongs to.
	SessionID string `json:"session_id,omitempty"`

	// Role is either [RoleUser] or [RoleAssistant].
	Role string `json:"role"`

	// Content is the message text. For assistant messages produced by the
	// streaming endpoint this is the concatenation of all streamed fragments.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the message was recorded.
	CreatedAt time.Time `json:"created_at,omitzero"`
}
