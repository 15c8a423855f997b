package service

import (
	"context"
	"io"
	"time"

	"github.com/docchat/docchat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for signing in and out
// of the backend.
type ClientAuthService interface {
	// Login authenticates the user and returns their profile. On success
	// the underlying transport holds the bearer token for all subsequent
	// calls made through the same client.
	Login(ctx context.Context, login, password string) (models.User, error)

	// Logout clears the held credential on the transport and notifies the
	// server.
	Logout(ctx context.Context) error
}

// ChatService defines the client-side contract for asking questions and
// reading conversation history.
type ChatService interface {
	// Ask sends question within the given session over the streaming chat
	// endpoint. onFragment is invoked for every decoded fragment in
	// arrival order; the assembled assistant message is returned once the
	// stream ends. Fragments delivered before a mid-stream failure are
	// part of the returned message even when err is non-nil.
	Ask(ctx context.Context, sessionID, question string, onFragment func(fragment string)) (models.Message, error)

	// AskComplete sends question over the non-streaming chat endpoint and
	// returns the complete answer in a single exchange.
	AskComplete(ctx context.Context, sessionID, question string) (models.Message, error)

	// History returns the message history of a session in chronological
	// order.
	History(ctx context.Context, sessionID string) ([]models.Message, error)
}

// ContextService defines the client-side contract for managing knowledge
// contexts and their documents.
type ContextService interface {
	// List returns all knowledge contexts visible to the user.
	List(ctx context.Context) ([]models.Context, error)

	// Create creates a new knowledge context.
	Create(ctx context.Context, name, description string) (models.Context, error)

	// Delete removes a knowledge context and its documents.
	Delete(ctx context.Context, contextID string) error

	// UploadDocument uploads a document file into a context and returns
	// the server's ingestion report.
	UploadDocument(ctx context.Context, contextID, fileName string, file io.Reader) (models.UploadResult, error)
}

// SessionService defines the client-side contract for managing chat sessions.
type SessionService interface {
	// List returns all chat sessions of the user.
	List(ctx context.Context) ([]models.Session, error)

	// Create starts a new session, optionally bound to a knowledge
	// context.
	Create(ctx context.Context, contextID, title string) (models.Session, error)

	// Delete removes a session and its history.
	Delete(ctx context.Context, sessionID string) error
}

// HealthJob periodically checks backend reachability in the background and
// remembers the latest outcome for the UI to display.
type HealthJob interface {
	// Start launches the background checker with the given interval.
	// A non-positive interval falls back to a default. Restarting an
	// already running job stops the previous one first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background checker and waits for it to exit.
	// Safe to call when the job is not running.
	Stop()

	// Healthy reports the outcome of the most recent check.
	Healthy() bool
}
