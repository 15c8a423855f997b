package service

import (
	"context"
	"fmt"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

type clientAuthService struct {
	client api.ServerClient
	logger *logger.Logger
}

// NewClientAuthService creates the authentication service on top of the
// given transport.
func NewClientAuthService(client api.ServerClient, log *logger.Logger) ClientAuthService {
	return &clientAuthService{client: client, logger: log}
}

// Login implements [ClientAuthService]. The transport stores the bearer
// token itself; this service only resolves the profile afterwards so the UI
// has a display name to show.
func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	token, err := a.client.Authenticate(ctx, login, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	user, err := a.client.Profile(ctx)
	if err != nil {
		// the login itself succeeded; fall back to claim data
		a.logger.Warn().Err(err).Msg("profile fetch after login failed")
		return models.User{UserID: token.UserID, Login: login}, nil
	}

	return user, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
