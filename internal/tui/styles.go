package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = map[string]lipgloss.Style{
		"complete":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		"failed":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		"cancelled": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
)

func renderStatus(status string) string {
	if style, ok := statusStyle[status]; ok {
		return style.Render(status)
	}
	return titleStyle.Render(status)
}
