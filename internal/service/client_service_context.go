package service

import (
	"context"
	"fmt"
	"io"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/models"
)

type contextService struct {
	client api.ServerClient
}

// NewContextService creates the knowledge-context service on top of the
// given transport.
func NewContextService(client api.ServerClient) ContextService {
	return &contextService{client: client}
}

func (s *contextService) List(ctx context.Context) ([]models.Context, error) {
	contexts, err := s.client.ListContexts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contexts: %w", err)
	}
	return contexts, nil
}

func (s *contextService) Create(ctx context.Context, name, description string) (models.Context, error) {
	created, err := s.client.CreateContext(ctx, name, description)
	if err != nil {
		return models.Context{}, fmt.Errorf("create context: %w", err)
	}
	return created, nil
}

func (s *contextService) Delete(ctx context.Context, contextID string) error {
	if err := s.client.DeleteContext(ctx, contextID); err != nil {
		return fmt.Errorf("delete context: %w", err)
	}
	return nil
}

func (s *contextService) UploadDocument(ctx context.Context, contextID, fileName string, file io.Reader) (models.UploadResult, error) {
	result, err := s.client.UploadDocument(ctx, contextID, fileName, file)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload document: %w", err)
	}
	return result, nil
}
