package stubserver

import (
	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
)

type ctxKey string

// userIDCtxKey carries the authenticated user's ID between the auth
// middleware and the handlers.
const userIDCtxKey ctxKey = "user_id"

// Handler holds the HTTP handlers of the stub backend.
type Handler struct {
	store  *memoryStore
	cfg    *config.ServerConfig
	logger *logger.Logger
}

// NewHandler creates an HTTP handler set over a fresh in-memory store.
func NewHandler(cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:  newMemoryStore(),
		cfg:    cfg,
		logger: logger,
	}
}
