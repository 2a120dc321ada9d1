package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63"))
	busyButtonStyle = buttonStyle.Background(lipgloss.Color("240"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	resultsTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	noteStyle         = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
