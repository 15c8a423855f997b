package models

// StreamDonePayload is the literal event payload that terminates a streaming
// chat response. Once it is observed no further fragments follow.
const StreamDonePayload = "[DONE]"

// StreamDataPrefix marks an event-data line of a streaming chat response.
const StreamDataPrefix = "data: "

// StreamEvent is a single decoded event of a streaming chat response.
//
// Content is a pointer so that presence of the field can be distinguished
// from an empty fragment: events without a content field (keep-alives,
// metadata) produce no output at all, while `{"content":""}` is a valid,
// empty fragment.
type StreamEvent struct {
	// Content is the partial answer text carried by this event.
	Content *string `json:"content"`
}
