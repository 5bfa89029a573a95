package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("62")
	ColorAccent  = lipgloss.Color("205")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SelectedItemStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Width(18)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	HelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)
