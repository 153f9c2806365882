package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	statRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	successBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)
)
