package tui

import (
	"github.com/docchat/docchat/models"
)

// LoginResult finishes the async login command.
type LoginResult struct {
	User models.User
	Err  error
}

type sessionsLoadedMsg struct {
	sessions []models.Session
	contexts []models.Context
	err      error
}

type historyLoadedMsg struct {
	session models.Session
	history []models.Message
	err     error
}

type streamFragmentMsg struct {
	text string
}

// answerDoneMsg delivers the completed assistant message, whether it was
// streamed or fetched in one piece.
type answerDoneMsg struct {
	message models.Message
	err     error
}

type actionDoneMsg struct {
	status string
	err    error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct{}
