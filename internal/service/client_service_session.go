package service

import (
	"context"
	"fmt"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/models"
)

type sessionService struct {
	client api.ServerClient
}

// NewSessionService creates the chat-session service on top of the given
// transport.
func NewSessionService(client api.ServerClient) SessionService {
	return &sessionService{client: client}
}

func (s *sessionService) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.client.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Create(ctx context.Context, contextID, title string) (models.Session, error) {
	created, err := s.client.CreateSession(ctx, models.Session{ContextID: contextID, Title: title})
	if err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
