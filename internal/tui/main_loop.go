// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat/internal/service"
	"github.com/docchat/docchat/models"
)

type screen int

const (
	screenSessions screen = iota
	screenContexts
	screenChat
	screenNewSession
	screenNewContext
	screenUpload
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	screen  screen
	loading bool
	status  string
	errMsg  string

	sessions     []models.Session
	sessionIdx   int
	contexts     []models.Context
	contextIdx   int
	contextNames map[string]string

	// chat state
	chatSession   models.Session
	history       []models.Message
	draft         textinput.Model
	streamAnswers bool
	streaming     bool
	partial       string
	streamCh      chan tea.Msg
	spin          spinner.Model

	// form state
	formInputs    []textinput.Model
	formFocus     int
	formContextID string
	formReturn    screen

	logout     bool
	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User, streamAnswers bool) mainLoopModel {
	draft := textinput.New()
	draft.Placeholder = "ask a question..."
	draft.CharLimit = 1024
	draft.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		user:          user,
		loading:       true,
		draft:         draft,
		streamAnswers: streamAnswers,
		spin:          spin,
		contextNames:  map[string]string{},
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadSessions()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.sessions = msg.sessions
		m.contexts = msg.contexts
		m.contextNames = map[string]string{}
		for _, kctx := range m.contexts {
			m.contextNames[kctx.ContextID] = kctx.Name
		}
		m.sessionIdx = clampIndex(m.sessionIdx, len(m.sessions))
		m.contextIdx = clampIndex(m.contextIdx, len(m.contexts))
		return m, nil

	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.chatSession = msg.session
		m.history = msg.history
		m.partial = ""
		m.screen = screenChat
		m.draft.SetValue("")
		m.draft.Focus()
		return m, textinput.Blink

	case streamFragmentMsg, answerDoneMsg:
		return m.updateChatStream(msg)

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.loading = true
		return m, m.cmdLoadSessions()

	case logoutDoneMsg:
		// the transport clears the credential even if the server call
		// failed, so the client session ends either way
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		m.status = "Answer copied to clipboard"
		return m, nil

	case spinner.TickMsg:
		if !m.streaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

		switch m.screen {
		case screenSessions:
			return m.updateSessionsKeys(msg)
		case screenContexts:
			return m.updateContextsKeys(msg)
		case screenChat:
			return m.updateChatKeys(msg)
		case screenNewSession, screenNewContext, screenUpload:
			return m.updateFormKeys(msg)
		}
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenContexts:
		return m.viewContexts()
	case screenChat:
		return m.viewChat()
	case screenNewSession:
		return m.viewForm("NEW CHAT", []string{"Title"})
	case screenNewContext:
		return m.viewForm("NEW CONTEXT", []string{"Name", "Description"})
	case screenUpload:
		return m.viewForm("UPLOAD DOCUMENT", []string{"File path"})
	default:
		return m.viewSessions()
	}
}

// --- sessions screen ---

func (m mainLoopModel) updateSessionsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.sessionIdx > 0 {
			m.sessionIdx--
		}
	case key.Matches(msg, keys.down):
		if m.sessionIdx < len(m.sessions)-1 {
			m.sessionIdx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.sessions) == 0 {
			return m, nil
		}
		m.loading = true
		return m, m.cmdOpenSession(m.sessions[m.sessionIdx])
	case key.Matches(msg, keys.newItem):
		return m.openForm(screenNewSession, "", "title"), textinput.Blink
	case key.Matches(msg, keys.delete):
		if len(m.sessions) == 0 {
			return m, nil
		}
		return m, m.cmdDeleteSession(m.sessions[m.sessionIdx].SessionID)
	case key.Matches(msg, keys.contexts):
		m.screen = screenContexts
		m.status = ""
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) viewSessions() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}
	if m.loading {
		b.WriteString("Loading...\n")
		return renderPage("CHATS", strings.TrimRight(b.String(), "\n"), "")
	}

	if len(m.sessions) == 0 {
		b.WriteString("No chats yet. Press n to start one.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-30s │ %-20s │ %s\n", "Title", "Context", "Created"))
		b.WriteString(strings.Repeat("─", 70) + "\n")
		for i, session := range m.sessions {
			cursor := " "
			if i == m.sessionIdx {
				cursor = ">"
			}
			contextName := "-"
			if session.ContextID != "" {
				if name, ok := m.contextNames[session.ContextID]; ok {
					contextName = name
				}
			}
			b.WriteString(fmt.Sprintf("%s %-30s │ %-20s │ %s\n",
				cursor,
				fitText(session.Title, 30),
				fitText(contextName, 20),
				session.CreatedAt.Format("2006-01-02 15:04")))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.healthLine())

	return renderPage("CHATS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: delete │ c: contexts │ l: logout │ q: quit")
}

func (m mainLoopModel) healthLine() string {
	if m.services.HealthJob.Healthy() {
		return statusOKStyle.Render("backend: ok")
	}
	return statusBadStyle.Render("backend: unreachable")
}

// --- contexts screen ---

func (m mainLoopModel) updateContextsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.contextIdx > 0 {
			m.contextIdx--
		}
	case key.Matches(msg, keys.down):
		if m.contextIdx < len(m.contexts)-1 {
			m.contextIdx++
		}
	case key.Matches(msg, keys.enter):
		// start a conversation grounded on the selected context
		if len(m.contexts) == 0 {
			return m, nil
		}
		kctx := m.contexts[m.contextIdx]
		m.loading = true
		return m, m.cmdCreateSession(kctx.ContextID, "Chat: "+kctx.Name)
	case key.Matches(msg, keys.newItem):
		return m.openForm(screenNewContext, "", "name", "description"), textinput.Blink
	case key.Matches(msg, keys.upload):
		if len(m.contexts) == 0 {
			return m, nil
		}
		return m.openForm(screenUpload, m.contexts[m.contextIdx].ContextID, "/path/to/file"), textinput.Blink
	case key.Matches(msg, keys.delete):
		if len(m.contexts) == 0 {
			return m, nil
		}
		return m, m.cmdDeleteContext(m.contexts[m.contextIdx].ContextID)
	case key.Matches(msg, keys.esc):
		m.screen = screenSessions
		m.status = ""
	}
	return m, nil
}

func (m mainLoopModel) viewContexts() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	if len(m.contexts) == 0 {
		b.WriteString("No contexts yet. Press n to create one.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-25s │ %5s │ %s\n", "Name", "Docs", "Description"))
		b.WriteString(strings.Repeat("─", 70) + "\n")
		for i, kctx := range m.contexts {
			cursor := " "
			if i == m.contextIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-25s │ %5d │ %s\n",
				cursor,
				fitText(kctx.Name, 25),
				kctx.DocumentCount,
				fitText(kctx.Description, 30)))
		}
	}

	return renderPage("CONTEXTS", strings.TrimRight(b.String(), "\n"),
		"enter: chat in context │ n: new │ u: upload │ d: delete │ esc: back")
}

// --- forms ---

// openForm switches to a form screen with one input per placeholder. The
// form remembers where to return on esc and, for uploads, which context it
// targets.
func (m mainLoopModel) openForm(target screen, contextID string, placeholders ...string) mainLoopModel {
	m.formReturn = m.screen
	m.screen = target
	m.formContextID = contextID
	m.formFocus = 0
	m.status = ""
	m.errMsg = ""

	m.formInputs = make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 256
		input.Width = 50
		if i == 0 {
			input.Focus()
		}
		m.formInputs[i] = input
	}
	return m
}

func (m mainLoopModel) updateFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.formReturn
		return m, nil
	case key.Matches(msg, keys.tab):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	first := strings.TrimSpace(m.formInputs[0].Value())

	switch m.screen {
	case screenNewSession:
		m.screen = screenSessions
		m.loading = true
		return m, m.cmdCreateSession("", first)
	case screenNewContext:
		if first == "" {
			m.errMsg = "Name is required"
			return m, nil
		}
		description := ""
		if len(m.formInputs) > 1 {
			description = strings.TrimSpace(m.formInputs[1].Value())
		}
		m.screen = screenContexts
		return m, m.cmdCreateContext(first, description)
	case screenUpload:
		if first == "" {
			m.errMsg = "File path is required"
			return m, nil
		}
		m.screen = screenContexts
		return m, m.cmdUpload(m.formContextID, first)
	}

	return m, nil
}

func (m mainLoopModel) viewForm(title string, labels []string) string {
	var b strings.Builder

	width := 0
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}

	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, label))
		if i < len(m.formInputs) {
			b.WriteString(m.formInputs[i].View())
		}
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab: next field │ enter: submit")
}

// --- commands ---

func (m mainLoopModel) cmdLoadSessions() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		sessions, err := services.SessionService.List(ctx)
		if err != nil {
			return sessionsLoadedMsg{err: err}
		}
		contexts, err := services.ContextService.List(ctx)
		if err != nil {
			return sessionsLoadedMsg{err: err}
		}
		return sessionsLoadedMsg{sessions: sessions, contexts: contexts}
	}
}

func (m mainLoopModel) cmdOpenSession(session models.Session) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		history, err := services.ChatService.History(ctx, session.SessionID)
		return historyLoadedMsg{session: session, history: history, err: err}
	}
}

func (m mainLoopModel) cmdCreateSession(contextID, title string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		session, err := services.SessionService.Create(ctx, contextID, title)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return historyLoadedMsg{session: session}
	}
}

func (m mainLoopModel) cmdDeleteSession(sessionID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.SessionService.Delete(ctx, sessionID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Chat deleted"}
	}
}

func (m mainLoopModel) cmdCreateContext(name, description string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if _, err := services.ContextService.Create(ctx, name, description); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Context created"}
	}
}

func (m mainLoopModel) cmdDeleteContext(contextID string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.ContextService.Delete(ctx, contextID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Context deleted"}
	}
}

func (m mainLoopModel) cmdUpload(contextID, path string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		defer file.Close()

		result, err := services.ContextService.UploadDocument(ctx, contextID, filepath.Base(path), file)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Uploaded %s (%d chunks)", result.Document.FileName, result.Chunks)}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return logoutDoneMsg{err: services.AuthService.Logout(ctx)}
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
