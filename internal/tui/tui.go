// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive terminal client: a login flow
// followed by a main loop with session, context, and chat screens. All
// backend calls run as asynchronous Bubble Tea commands so the interface
// never blocks on the network.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/service"
	"github.com/docchat/docchat/models"
)

type TUI struct {
	services *service.ClientServices
	// streamAnswers selects between the streaming chat endpoint and the
	// single-response one on the chat screen.
	streamAnswers bool
}

func New(services *service.ClientServices, streamAnswers bool, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, streamAnswers: streamAnswers}, nil
}

// LoginFlow runs the sign-in screen until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := NewLoginModel(ctx, t.services.AuthService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return models.User{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop runs the main screen set for an authenticated user. It returns
// logout=true when the user logged out rather than quitting, so the caller
// can restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user, t.streamAnswers)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
