package stubserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.ServerConfig{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
		Version:       "test",
	}
	ts := httptest.NewServer(NewHandler(cfg, logger.Nop()).Init())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the JSON response into out when out is non-nil.
func doJSON(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func loginToken(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	var token models.Token
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "",
		models.User{Login: "alice", Password: "secret"}, &token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, token.SignedString)
	return token.SignedString
}

func TestLogin_IssuesToken(t *testing.T) {
	ts := newTestServer(t)

	var token models.Token
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "",
		models.User{Login: "alice", Password: "secret"}, &token)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestLogin_WrongPasswordForKnownLogin(t *testing.T) {
	ts := newTestServer(t)
	loginToken(t, ts)

	var errBody models.ErrorResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "",
		models.User{Login: "alice", Password: "other"}, &errBody)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid login/password", errBody.Text())
}

func TestLogin_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "",
		models.User{Login: "alice"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth_RejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/contexts", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "missing token")

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/contexts", "not-a-jwt", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "garbage token")
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var user models.User
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/auth/profile", token, nil, &user)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", user.Login)
	assert.Empty(t, user.Password, "credential must not be echoed")
}

func TestContextLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var created models.Context
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/contexts", token,
		models.Context{Name: "contracts", Description: "legal docs"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created.ContextID)

	var contexts []models.Context
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/contexts", token, nil, &contexts)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, contexts, 1)
	assert.Equal(t, "contracts", contexts[0].Name)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/contexts/"+created.ContextID, token, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/contexts/"+created.ContextID, token, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateContext_RequiresName(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/contexts", token,
		models.Context{Description: "no name"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadDocument(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var kctx models.Context
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/contexts", token,
		models.Context{Name: "contracts"}, &kctx)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "contract.txt")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 600))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/contexts/"+kctx.ContextID+"/documents", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	uploadResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer uploadResp.Body.Close()
	require.Equal(t, http.StatusCreated, uploadResp.StatusCode)

	var result models.UploadResult
	require.NoError(t, json.NewDecoder(uploadResp.Body).Decode(&result))
	assert.Equal(t, "contract.txt", result.Document.FileName)
	assert.Equal(t, int64(600), result.Document.Size)
	assert.Equal(t, 2, result.Chunks)

	var contexts []models.Context
	doJSON(t, http.MethodGet, ts.URL+"/api/contexts", token, nil, &contexts)
	require.Len(t, contexts, 1)
	assert.Equal(t, 1, contexts[0].DocumentCount)
}

func TestSessionsAndChat_NonStreaming(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var session models.Session
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", token,
		models.Session{Title: "first chat"}, &session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, session.SessionID)

	var answer models.ChatResponse
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/chat", token,
		models.ChatRequest{SessionID: session.SessionID, Question: "what is kept?"}, &answer)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, answer.Answer, `"what is kept?"`)
	assert.Equal(t, session.SessionID, answer.SessionID)

	var history []models.Message
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+session.SessionID+"/messages", token, nil, &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	assert.Equal(t, answer.Answer, history[1].Content)
}

func TestChat_UnknownSession(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/chat", token,
		models.ChatRequest{SessionID: "missing", Question: "hi"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChat_EmptyQuestion(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var session models.Session
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", token, models.Session{}, &session)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/chat", token,
		models.ChatRequest{SessionID: session.SessionID, Question: "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChat_StreamingWireFormat(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var session models.Session
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", token, models.Session{}, &session)

	raw, err := json.Marshal(models.ChatRequest{SessionID: session.SessionID, Question: "hi", Stream: true})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/chat", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	var fragments []string
	sawDone := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, models.StreamDataPrefix), "line %q lacks the data prefix", line)
		payload := strings.TrimPrefix(line, models.StreamDataPrefix)
		if payload == models.StreamDonePayload {
			sawDone = true
			continue
		}
		require.False(t, sawDone, "no events may follow the sentinel")

		var event models.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(payload), &event))
		require.NotNil(t, event.Content)
		fragments = append(fragments, *event.Content)
	}

	assert.True(t, sawDone, "stream must end with the sentinel")
	assert.Contains(t, strings.Join(fragments, ""), `"hi"`)
}

func TestSessionDelete(t *testing.T) {
	ts := newTestServer(t)
	token := loginToken(t, ts)

	var session models.Session
	doJSON(t, http.MethodPost, ts.URL+"/api/sessions", token, models.Session{}, &session)

	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/sessions/"+session.SessionID, token, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+session.SessionID+"/messages", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var health models.HealthResponse
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/health", "", nil, &health)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
}
