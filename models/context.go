package models

import "time"

// Context represents a knowledge context: a named collection of uploaded
// documents that chat sessions can ground their answers on.
type Context struct {
	// ContextID is the unique identifier of the context.
	ContextID string `json:"context_id"`

	// Name is the user-visible name of the context.
	Name string `json:"name"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// DocumentCount is the number of documents currently attached.
	DocumentCount int `json:"document_count"`

	// CreatedAt is the timestamp when the context was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Document describes a single file uploaded into a context.
type Document struct {
	// DocumentID is the unique identifier of the document.
	DocumentID string `json:"document_id"`

	// ContextID is the owning context.
	ContextID string `json:"context_id"`

	// FileName is the original name of the uploaded file.
	FileName string `json:"file_name"`

	// Size is the uploaded file size in bytes.
	Size int64 `json:"size"`

	// UploadedAt is the timestamp when the upload completed.
	UploadedAt time.Time `json:"uploaded_at,omitzero"`
}
