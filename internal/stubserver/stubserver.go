package stubserver

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/docchat/docchat/internal/config"
	"github.com/docchat/docchat/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server runs the stub backend's HTTP listener and handles graceful
// shutdown on termination signals.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer creates a server over the given handler. The write timeout is
// deliberately left unset: the chat endpoint streams for as long as the
// client keeps reading.
func NewServer(handler http.Handler, cfg *config.ServerConfig, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// RunServer serves until a termination signal arrives, then shuts down
// gracefully, letting in-flight requests finish within shutdownTimeout.
func (s *Server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *Server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	s.logger.Info().Msg("launching HTTP server")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
