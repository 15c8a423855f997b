// SPDX-License-Identifier: Apache-2.0

// Package service contains the client-side application services that sit
// between the transport layer ([api.ServerClient]) and the terminal UI.
// Services translate UI intents into API calls and keep the UI free of
// transport concerns.
package service

import (
	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/logger"
)

// ClientServices aggregates every client-side service behind one handle, the
// way the UI consumes them.
type ClientServices struct {
	AuthService    ClientAuthService
	ChatService    ChatService
	ContextService ContextService
	SessionService SessionService
	HealthJob      HealthJob
}

// NewClientServices wires all client services on top of a single transport.
func NewClientServices(client api.ServerClient, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(client, log),
		ChatService:    NewChatService(client, log),
		ContextService: NewContextService(client),
		SessionService: NewSessionService(client),
		HealthJob:      NewHealthJob(client, log),
	}
}
