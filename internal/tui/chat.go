// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat/models"
)

const chatLineWidth = 76

func (m mainLoopModel) updateChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		// the stream keeps the channel alive until it finishes; leaving
		// mid-answer would orphan it
		if m.streaming {
			return m, nil
		}
		m.screen = screenSessions
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSessions()

	case key.Matches(msg, keys.enter):
		if m.streaming {
			return m, nil
		}
		question := strings.TrimSpace(m.draft.Value())
		if question == "" {
			return m, nil
		}

		m.history = append(m.history, models.Message{
			SessionID: m.chatSession.SessionID,
			Role:      models.RoleUser,
			Content:   question,
		})
		m.draft.SetValue("")
		m.errMsg = ""
		m.status = ""
		if !m.streamAnswers {
			m.streaming = true
			m.partial = ""
			return m, tea.Batch(m.cmdAskComplete(question), m.spin.Tick)
		}
		return m.startStream(question)

	case key.Matches(msg, keys.copy):
		if answer := m.lastAnswer(); answer != "" {
			return m, cmdCopyToClipboard(answer)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

// startStream launches the streaming question in a goroutine that forwards
// every fragment, and finally the completed message, over a channel the
// Bubble Tea loop pulls from one command at a time.
func (m mainLoopModel) startStream(question string) (tea.Model, tea.Cmd) {
	ch := make(chan tea.Msg)
	m.streamCh = ch
	m.streaming = true
	m.partial = ""

	ctx, services := m.ctx, m.services
	sessionID := m.chatSession.SessionID

	go func() {
		message, err := services.ChatService.Ask(ctx, sessionID, question, func(fragment string) {
			ch <- streamFragmentMsg{text: fragment}
		})
		ch <- answerDoneMsg{message: message, err: err}
	}()

	return m, tea.Batch(listenStream(ch), m.spin.Tick)
}

// cmdAskComplete fetches the whole answer over the non-streaming endpoint.
// The result arrives through the same done message the streaming path uses.
func (m mainLoopModel) cmdAskComplete(question string) tea.Cmd {
	ctx, services := m.ctx, m.services
	sessionID := m.chatSession.SessionID

	return func() tea.Msg {
		message, err := services.ChatService.AskComplete(ctx, sessionID, question)
		return answerDoneMsg{message: message, err: err}
	}
}

func listenStream(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m mainLoopModel) updateChatStream(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case streamFragmentMsg:
		m.partial += msg.text
		return m, listenStream(m.streamCh)

	case answerDoneMsg:
		m.streaming = false
		m.streamCh = nil
		m.partial = ""
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		// a partial answer survives a mid-stream failure
		if msg.message.Content != "" {
			m.history = append(m.history, msg.message)
		}
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) viewChat() string {
	var b strings.Builder

	title := m.chatSession.Title
	if name, ok := m.contextNames[m.chatSession.ContextID]; ok {
		title += " (" + name + ")"
	}

	if len(m.history) == 0 && !m.streaming {
		b.WriteString("No messages yet.\n")
	}
	for _, message := range m.history {
		b.WriteString(renderChatMessage(message.Role, message.Content))
	}
	if m.streaming {
		b.WriteString(renderChatMessage(models.RoleAssistant, m.partial+" "+m.spin.View()))
	}

	b.WriteString("\n> ")
	b.WriteString(m.draft.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(fitText(strings.ToUpper(title), chatLineWidth),
		strings.TrimRight(b.String(), "\n"),
		"enter: send │ ctrl+y: copy last answer │ esc: back")
}

func renderChatMessage(role, content string) string {
	prefix := "bot> "
	if role == models.RoleUser {
		prefix = "you> "
	}

	var b strings.Builder
	for i, line := range wrapText(content, chatLineWidth-len(prefix)) {
		if i == 0 {
			if role == models.RoleUser {
				b.WriteString(userLineStyle.Render(prefix))
			} else {
				b.WriteString(prefix)
			}
		} else {
			b.WriteString(strings.Repeat(" ", len(prefix)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// lastAnswer returns the content of the most recent assistant message.
func (m mainLoopModel) lastAnswer() string {
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Role == models.RoleAssistant {
			return m.history[i].Content
		}
	}
	return ""
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}
