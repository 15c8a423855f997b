package stubserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docchat/docchat/models"
)

var (
	// ErrWrongPassword indicates the login exists but the password differs.
	ErrWrongPassword = errors.New("wrong password")
	// ErrContextNotFound indicates an unknown context ID.
	ErrContextNotFound = errors.New("context not found")
	// ErrSessionNotFound indicates an unknown session ID.
	ErrSessionNotFound = errors.New("session not found")
)

// memoryStore keeps the whole backend state in process memory. All methods
// are safe for concurrent use.
type memoryStore struct {
	mu        sync.RWMutex
	users     map[string]models.User       // keyed by login
	contexts  map[string]models.Context    // keyed by context ID
	documents map[string][]models.Document // keyed by context ID
	sessions  map[string]models.Session    // keyed by session ID
	messages  map[string][]models.Message  // keyed by session ID
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[string]models.User),
		contexts:  make(map[string]models.Context),
		documents: make(map[string][]models.Document),
		sessions:  make(map[string]models.Session),
		messages:  make(map[string][]models.Message),
	}
}

// EnsureUser returns the account for login, creating it on first use. This is
// a development stub: any credentials are accepted for a new login, but a
// known login must present the password it was created with.
func (s *memoryStore) EnsureUser(login, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[login]; ok {
		if user.Password != password {
			return models.User{}, ErrWrongPassword
		}
		return user, nil
	}

	user := models.User{
		UserID:    uuid.NewString(),
		Login:     login,
		Name:      login,
		Password:  password,
		CreatedAt: time.Now(),
	}
	s.users[login] = user
	return user, nil
}

// UserByID finds an account by its ID.
func (s *memoryStore) UserByID(userID string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.UserID == userID {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *memoryStore) CreateContext(name, description string) models.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	kctx := models.Context{
		ContextID:   uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	s.contexts[kctx.ContextID] = kctx
	return kctx
}

func (s *memoryStore) ListContexts() []models.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contexts := make([]models.Context, 0, len(s.contexts))
	for _, kctx := range s.contexts {
		contexts = append(contexts, kctx)
	}
	sort.Slice(contexts, func(i, j int) bool {
		if contexts[i].CreatedAt.Equal(contexts[j].CreatedAt) {
			return contexts[i].Name < contexts[j].Name
		}
		return contexts[i].CreatedAt.Before(contexts[j].CreatedAt)
	})
	return contexts
}

func (s *memoryStore) GetContext(contextID string) (models.Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kctx, ok := s.contexts[contextID]
	return kctx, ok
}

func (s *memoryStore) DeleteContext(contextID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contexts[contextID]; !ok {
		return ErrContextNotFound
	}
	delete(s.contexts, contextID)
	delete(s.documents, contextID)
	return nil
}

// AddDocument records an uploaded file under the given context and bumps the
// context's document counter.
func (s *memoryStore) AddDocument(contextID, fileName string, size int64) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kctx, ok := s.contexts[contextID]
	if !ok {
		return models.Document{}, ErrContextNotFound
	}

	doc := models.Document{
		DocumentID: uuid.NewString(),
		ContextID:  contextID,
		FileName:   fileName,
		Size:       size,
		UploadedAt: time.Now(),
	}
	s.documents[contextID] = append(s.documents[contextID], doc)

	kctx.DocumentCount = len(s.documents[contextID])
	s.contexts[contextID] = kctx

	return doc, nil
}

func (s *memoryStore) CreateSession(contextID, title string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contextID != "" {
		if _, ok := s.contexts[contextID]; !ok {
			return models.Session{}, ErrContextNotFound
		}
	}
	if title == "" {
		title = "New chat"
	}

	session := models.Session{
		SessionID: uuid.NewString(),
		ContextID: contextID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	s.sessions[session.SessionID] = session
	return session, nil
}

func (s *memoryStore) ListSessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].SessionID < sessions[j].SessionID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions
}

func (s *memoryStore) GetSession(sessionID string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *memoryStore) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	delete(s.messages, sessionID)
	return nil
}

// AppendMessage records a message at the end of a session's history.
func (s *memoryStore) AppendMessage(sessionID, role, content string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return models.Message{}, ErrSessionNotFound
	}

	msg := models.Message{
		MessageID: uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return msg, nil
}

// SessionMessages returns the history of a session in insertion order.
func (s *memoryStore) SessionMessages(sessionID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}

	history := make([]models.Message, len(s.messages[sessionID]))
	copy(history, s.messages[sessionID])
	return history, nil
}
