package stubserver_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/service"
	"github.com/docchat/docchat/internal/stubserver"
	"github.com/docchat/docchat/models"
)

func newIntegrationClient(t *testing.T) *api.Client {
	t.Helper()

	cfg := &config.ServerConfig{
		TokenSignKey:  "integration-sign-key",
		TokenIssuer:   "integration-issuer",
		TokenDuration: time.Hour,
		Version:       "integration",
	}
	ts := httptest.NewServer(stubserver.NewHandler(cfg, logger.Nop()).Init())
	t.Cleanup(ts.Close)

	client, err := api.New(api.Config{BaseURL: ts.URL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return client
}

// TestClientAgainstStubServer walks the whole API surface through the real
// HTTP client: login, context and document management, sessions, both chat
// variants, history, and health.
func TestClientAgainstStubServer(t *testing.T) {
	ctx := context.Background()
	client := newIntegrationClient(t)

	token, err := client.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, client.Token())

	user, err := client.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)

	kctx, err := client.CreateContext(ctx, "contracts", "legal documents")
	require.NoError(t, err)

	result, err := client.UploadDocument(ctx, kctx.ContextID, "contract.txt",
		strings.NewReader("the quick brown fox"))
	require.NoError(t, err)
	assert.Equal(t, "contract.txt", result.Document.FileName)
	assert.Positive(t, result.Chunks)

	session, err := client.CreateSession(ctx, models.Session{ContextID: kctx.ContextID, Title: "review"})
	require.NoError(t, err)

	// non-streaming variant
	answer, err := client.Ask(ctx, models.ChatRequest{SessionID: session.SessionID, Question: "what is kept?"})
	require.NoError(t, err)
	assert.NotEmpty(t, answer.Answer)

	// streaming variant, assembled fragment by fragment
	stream, err := client.AskStream(ctx, models.ChatRequest{
		SessionID: session.SessionID,
		Question:  "what is kept?",
		Stream:    true,
	})
	require.NoError(t, err)
	defer stream.Close()

	var assembled strings.Builder
	for {
		fragment, err := stream.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assembled.WriteString(fragment)
	}
	assert.Equal(t, answer.Answer, assembled.String(),
		"streamed answer assembles to the non-streaming answer for the same question")

	history, err := client.Messages(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleAssistant, history[1].Role)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	require.NoError(t, client.Logout(ctx))
	assert.Empty(t, client.Token())

	_, err = client.ListContexts(ctx)
	require.Error(t, err, "requests without a credential are rejected")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

// TestServicesAgainstStubServer drives the client-side service layer against
// the stub backend, the wiring the terminal UI actually uses.
func TestServicesAgainstStubServer(t *testing.T) {
	ctx := context.Background()
	client := newIntegrationClient(t)
	services := service.NewClientServices(client, logger.Nop())

	user, err := services.AuthService.Login(ctx, "bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Login)

	session, err := services.SessionService.Create(ctx, "", "quick question")
	require.NoError(t, err)

	var fragments []string
	msg, err := services.ChatService.Ask(ctx, session.SessionID, "hello there", func(fragment string) {
		fragments = append(fragments, fragment)
	})
	require.NoError(t, err)
	require.NotEmpty(t, fragments)
	assert.Equal(t, strings.Join(fragments, ""), msg.Content)

	history, err := services.ChatService.History(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, msg.Content, history[1].Content)

	require.NoError(t, services.AuthService.Logout(ctx))
}
