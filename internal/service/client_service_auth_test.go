package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/mock"
	"github.com/docchat/docchat/models"
)

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	client.EXPECT().
		Authenticate(gomock.Any(), "alice", "secret").
		Return(models.Token{SignedString: "signed", UserID: "42"}, nil)
	client.EXPECT().
		Profile(gomock.Any()).
		Return(models.User{UserID: "42", Login: "alice", Name: "Alice"}, nil)

	auth := NewClientAuthService(client, logger.Nop())

	user, err := auth.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "42", user.UserID)
	assert.Equal(t, "Alice", user.Name)
}

func TestClientAuthService_Login_AuthRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	client.EXPECT().
		Authenticate(gomock.Any(), "alice", "wrong").
		Return(models.Token{}, errors.New("401: invalid credentials"))

	auth := NewClientAuthService(client, logger.Nop())

	_, err := auth.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

func TestClientAuthService_Login_ProfileFailureFallsBackToClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	client.EXPECT().
		Authenticate(gomock.Any(), "alice", "secret").
		Return(models.Token{SignedString: "signed", UserID: "42"}, nil)
	client.EXPECT().
		Profile(gomock.Any()).
		Return(models.User{}, errors.New("503: temporarily unavailable"))

	auth := NewClientAuthService(client, logger.Nop())

	user, err := auth.Login(context.Background(), "alice", "secret")
	require.NoError(t, err, "a failed profile fetch must not fail the login")
	assert.Equal(t, "42", user.UserID)
	assert.Equal(t, "alice", user.Login)
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	client.EXPECT().Logout(gomock.Any()).Return(nil)

	auth := NewClientAuthService(client, logger.Nop())
	require.NoError(t, auth.Logout(context.Background()))
}

func TestClientAuthService_Logout_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	serverErr := errors.New("500: session store down")
	client.EXPECT().Logout(gomock.Any()).Return(serverErr)

	auth := NewClientAuthService(client, logger.Nop())

	err := auth.Logout(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, serverErr)
}
