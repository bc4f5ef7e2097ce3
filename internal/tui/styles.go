package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Width(16)
	focusedLabelStyle = labelStyle.Bold(true)
	disabledStyle     = lipgloss.NewStyle().Faint(true)
	buttonStyle       = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())

	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorBoxStyle  = resultBoxStyle.BorderForeground(lipgloss.Color("196"))
)
