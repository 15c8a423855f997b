// SPDX-License-Identifier: Apache-2.0

// Package api provides the transport layer for communicating with the docchat
// backend.
//
// The primary abstraction is [ServerClient], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([New]) built on resty, plus [ChatStream], a pull-based
// decoder for the event-stream body of the streaming chat endpoint.
//
// Every failure a caller can observe is an *[APIError]: server-reported
// failures carry the status code and the server's message, transport-level
// failures carry a "request failed" message wrapping the underlying error.
// Malformed individual stream events are not failures; [ChatStream] skips
// them silently.
package api

import (
	"context"
	"io"

	"github.com/docchat/docchat/models"
)

//go:generate mockgen -source=doc.go -destination=../mock/server_client_mock.go -package=mock

// ServerClient defines transport-agnostic communication with the docchat
// backend. Implementations are responsible for serialisation, authentication
// header management, and normalising transport-level failures into
// *[APIError] values.
type ServerClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Passing an empty string clears the credential.
	SetToken(token string)

	// Token returns the bearer token currently held by the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Authenticate exchanges login credentials for a bearer token via
	// POST /api/auth/login. On success the token is stored via SetToken so
	// every subsequent request carries it; on failure the held credential
	// is left untouched.
	Authenticate(ctx context.Context, login, password string) (models.Token, error)

	// Logout clears the held credential and notifies the server. The
	// credential is cleared even when the server call fails.
	Logout(ctx context.Context) error

	// Profile fetches the authenticated user's profile.
	Profile(ctx context.Context) (models.User, error)

	// ListContexts fetches all knowledge contexts visible to the user.
	ListContexts(ctx context.Context) ([]models.Context, error)

	// CreateContext creates a new knowledge context with the given name
	// and optional description.
	CreateContext(ctx context.Context, name, description string) (models.Context, error)

	// DeleteContext removes a knowledge context and its documents.
	DeleteContext(ctx context.Context, contextID string) error

	// UploadDocument uploads a file into a knowledge context as
	// multipart/form-data and returns the server's ingestion report.
	UploadDocument(ctx context.Context, contextID, fileName string, file io.Reader) (models.UploadResult, error)

	// ListSessions fetches all chat sessions of the user.
	ListSessions(ctx context.Context) ([]models.Session, error)

	// CreateSession starts a new chat session, optionally bound to a
	// knowledge context.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// DeleteSession removes a chat session and its message history.
	DeleteSession(ctx context.Context, sessionID string) error

	// Messages fetches the message history of a session in chronological
	// order.
	Messages(ctx context.Context, sessionID string) ([]models.Message, error)

	// Ask sends a question through the non-streaming chat endpoint and
	// returns the complete answer.
	Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// OpenChatStream issues the streaming chat request and returns the raw
	// response body. Closing the returned reader is the consumer's job;
	// wrap it in a [ChatStream] to decode fragments.
	OpenChatStream(ctx context.Context, req models.ChatRequest) (io.ReadCloser, error)

	// AskStream is OpenChatStream composed with [NewChatStream]: it opens
	// the streaming chat request and returns a ready-to-pull decoder.
	AskStream(ctx context.Context, req models.ChatRequest) (*ChatStream, error)

	// Health checks backend reachability.
	Health(ctx context.Context) (models.HealthResponse, error)
}
