package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/models"
	"github.com/go-resty/resty/v2"
)

const contentTypeJSON = "application/json"

// Config carries the settings needed to construct a [Client].
type Config struct {
	// BaseURL is the backend base URL. A missing scheme defaults to http.
	BaseURL string
	// Token is an optional bearer credential to start with.
	Token string
	// Timeout bounds non-streaming requests. Zero means a 30s default.
	// Streaming requests are bounded by the caller's context instead.
	Timeout time.Duration
}

// Client is the HTTP/REST implementation of [ServerClient].
//
// The bearer credential is process-wide client state: it is read by every
// request and replaced atomically by Authenticate, SetToken, and Logout.
// Replacement is visible to subsequent calls only, never retroactively to
// requests already in flight.
type Client struct {
	http *resty.Client
	// stream is a second client without a response timeout: a streaming
	// response stays open as long as the server keeps producing events,
	// so its lifetime is bounded by the request context, not a timer.
	stream *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

var _ ServerClient = (*Client)(nil)

// New constructs a [Client] for the given backend.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(cfg.Timeout),
		stream: resty.New().SetBaseURL(baseURL),
		logger: log,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [ServerClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Request performs one request/response exchange and normalizes the outcome.
// It is the single transport every operation of the client goes through.
//
// Default headers (JSON content type, bearer credential when held) are merged
// with the call-specific headers, the latter taking precedence. On a 2xx
// response the body is decoded into out when the response declares JSON and
// out is non-nil; the raw body text is returned either way. Any failure is
// an *[APIError].
func (c *Client) Request(ctx context.Context, method, path string, body any, headers map[string]string, out any) (string, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	for name, value := range headers {
		req.SetHeader(name, value)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", newTransportError(err)
	}
	if err = mapAPIError(resp); err != nil {
		return "", err
	}

	text := string(resp.Body())
	if out != nil && isJSONContentType(resp.Header().Get("Content-Type")) {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return "", newTransportError(fmt.Errorf("decode response: %w", err))
		}
	}

	return text, nil
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), contentTypeJSON)
}

// Authenticate implements [ServerClient]. The held credential is replaced
// only after the server accepted the login, so a failed call leaves the
// client state exactly as it was.
func (c *Client) Authenticate(ctx context.Context, login, password string) (models.Token, error) {
	var token models.Token
	user := models.User{Login: login, Password: password}

	if _, err := c.Request(ctx, resty.MethodPost, "/api/auth/login", user, nil, &token); err != nil {
		return models.Token{}, fmt.Errorf("authenticate: %w", err)
	}
	if token.SignedString == "" {
		return models.Token{}, newTransportError(fmt.Errorf("authenticate: empty access token in response"))
	}

	// cache the claims; a server may hand out opaque tokens, so a parse
	// failure is not fatal
	if parsed, err := models.ParseToken(token.SignedString); err == nil {
		parsed.TokenType = token.TokenType
		token = parsed
	} else {
		c.logger.Debug().Err(err).Msg("access token is not a parsable JWT")
	}

	c.SetToken(token.SignedString)
	return token, nil
}

// Logout implements [ServerClient]. The credential is cleared
// unconditionally; the server call is best-effort on top of that.
func (c *Client) Logout(ctx context.Context) error {
	defer c.SetToken("")

	if _, err := c.Request(ctx, resty.MethodPost, "/api/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Profile implements [ServerClient].
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	if _, err := c.Request(ctx, resty.MethodGet, "/api/auth/profile", nil, nil, &user); err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// ListContexts implements [ServerClient].
func (c *Client) ListContexts(ctx context.Context) ([]models.Context, error) {
	var contexts []models.Context
	if _, err := c.Request(ctx, resty.MethodGet, "/api/contexts", nil, nil, &contexts); err != nil {
		return nil, fmt.Errorf("list contexts: %w", err)
	}
	return contexts, nil
}

// CreateContext implements [ServerClient].
func (c *Client) CreateContext(ctx context.Context, name, description string) (models.Context, error) {
	var created models.Context
	body := models.Context{Name: name, Description: description}

	if _, err := c.Request(ctx, resty.MethodPost, "/api/contexts", body, nil, &created); err != nil {
		return models.Context{}, fmt.Errorf("create context: %w", err)
	}
	return created, nil
}

// DeleteContext implements [ServerClient].
func (c *Client) DeleteContext(ctx context.Context, contextID string) error {
	if _, err := c.Request(ctx, resty.MethodDelete, "/api/contexts/"+contextID, nil, nil, nil); err != nil {
		return fmt.Errorf("delete context: %w", err)
	}
	return nil
}

// UploadDocument implements [ServerClient]. The request is sent as
// multipart/form-data; no explicit Content-Type header is set so the
// underlying transport generates the multipart boundary itself.
func (c *Client) UploadDocument(ctx context.Context, contextID, fileName string, file io.Reader) (models.UploadResult, error) {
	var result models.UploadResult

	req := c.http.R().
		SetContext(ctx).
		SetFileReader("file", fileName, file)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post("/api/contexts/" + contextID + "/documents")
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload document: %w", newTransportError(err))
	}
	if err = mapAPIError(resp); err != nil {
		return models.UploadResult{}, fmt.Errorf("upload document: %w", err)
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.UploadResult{}, fmt.Errorf("upload document: %w", newTransportError(err))
	}

	return result, nil
}

// ListSessions implements [ServerClient].
func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if _, err := c.Request(ctx, resty.MethodGet, "/api/sessions", nil, nil, &sessions); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// CreateSession implements [ServerClient].
func (c *Client) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	var created models.Session
	if _, err := c.Request(ctx, resty.MethodPost, "/api/sessions", session, nil, &created); err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

// DeleteSession implements [ServerClient].
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := c.Request(ctx, resty.MethodDelete, "/api/sessions/"+sessionID, nil, nil, nil); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Messages implements [ServerClient].
func (c *Client) Messages(ctx context.Context, sessionID string) ([]models.Message, error) {
	var messages []models.Message
	if _, err := c.Request(ctx, resty.MethodGet, "/api/sessions/"+sessionID+"/messages", nil, nil, &messages); err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return messages, nil
}

// Ask implements [ServerClient].
func (c *Client) Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var answer models.ChatResponse
	req.Stream = false

	if _, err := c.Request(ctx, resty.MethodPost, "/api/chat", req, nil, &answer); err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat: %w", err)
	}
	return answer, nil
}

// Health implements [ServerClient].
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if _, err := c.Request(ctx, resty.MethodGet, "/api/health", nil, nil, &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health check: %w", err)
	}
	return health, nil
}

// OpenChatStream implements [ServerClient]. The response body is returned
// unparsed; a non-2xx status is normalized to *[APIError] and the body is
// closed before returning.
func (c *Client) OpenChatStream(ctx context.Context, req models.ChatRequest) (io.ReadCloser, error) {
	req.Stream = true

	httpReq := c.stream.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", "text/event-stream").
		SetBody(req).
		SetDoNotParseResponse(true)
	if token := c.Token(); token != "" {
		httpReq.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := httpReq.Post("/api/chat")
	if err != nil {
		return nil, fmt.Errorf("open chat stream: %w", newTransportError(err))
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.RawBody(), 4096))
		_ = resp.RawBody().Close()
		return nil, fmt.Errorf("open chat stream: %w", newStatusError(resp.StatusCode(), body))
	}

	return resp.RawBody(), nil
}

// AskStream implements [ServerClient].
func (c *Client) AskStream(ctx context.Context, req models.ChatRequest) (*ChatStream, error) {
	body, err := c.OpenChatStream(ctx, req)
	if err != nil {
		return nil, err
	}
	return NewChatStream(body), nil
}
