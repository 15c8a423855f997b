package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true)
	userLineStyle  = lipgloss.NewStyle().Bold(true)
	statusOKStyle  = lipgloss.NewStyle().Faint(true)
	statusBadStyle = lipgloss.NewStyle().Bold(true)
)
