package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

type chatService struct {
	client api.ServerClient
	logger *logger.Logger
}

// NewChatService creates the chat service on top of the given transport.
func NewChatService(client api.ServerClient, log *logger.Logger) ChatService {
	return &chatService{client: client, logger: log}
}

// Ask implements [ChatService]. It opens the streaming chat endpoint, pulls
// fragments until the stream ends, and assembles them into the returned
// assistant message. The stream is closed on every path.
func (c *chatService) Ask(ctx context.Context, sessionID, question string, onFragment func(fragment string)) (models.Message, error) {
	if strings.TrimSpace(question) == "" {
		return models.Message{}, ErrEmptyQuestion
	}

	stream, err := c.client.AskStream(ctx, models.ChatRequest{
		SessionID: sessionID,
		Question:  question,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("ask: %w", err)
	}
	defer stream.Close()

	stream.OnDecodeError = func(line string, decodeErr error) {
		c.logger.Debug().Err(decodeErr).Str("line", line).Msg("skipping malformed stream event")
	}

	var answer strings.Builder
	for {
		fragment, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fragments received so far stay valid
			return assistantMessage(sessionID, answer.String()), fmt.Errorf("ask: %w", err)
		}

		answer.WriteString(fragment)
		if onFragment != nil {
			onFragment(fragment)
		}
	}

	return assistantMessage(sessionID, answer.String()), nil
}

// AskComplete implements [ChatService].
func (c *chatService) AskComplete(ctx context.Context, sessionID, question string) (models.Message, error) {
	if strings.TrimSpace(question) == "" {
		return models.Message{}, ErrEmptyQuestion
	}

	resp, err := c.client.Ask(ctx, models.ChatRequest{SessionID: sessionID, Question: question})
	if err != nil {
		return models.Message{}, fmt.Errorf("ask: %w", err)
	}

	return assistantMessage(sessionID, resp.Answer), nil
}

// History implements [ChatService].
func (c *chatService) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	messages, err := c.client.Messages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return messages, nil
}

func assistantMessage(sessionID, content string) models.Message {
	return models.Message{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   content,
	}
}
