package client

import (
	"context"
	"errors"
	"time"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/service"
	"github.com/docchat/docchat/internal/tui"
)

const healthCheckInterval = 30 * time.Second

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the application lifecycle: login, then the main loop with the
// background health checker running. A logout restarts the cycle; quitting
// either screen ends it.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		a.logger.Info().Str("login", user.Login).Msg("user signed in")

		a.services.HealthJob.Start(ctx, healthCheckInterval)
		logout, err := a.tui.MainLoop(ctx, user)
		a.services.HealthJob.Stop()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.logger.Info().Msg("user logged out")
	}
}
