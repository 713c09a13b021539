package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles the column header row.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[string]lipgloss.Style{
		"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"created": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		"untagged": lipgloss.NewStyle().Faint(true),

		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),

		"error": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// StatusStyle returns the lipgloss style for the given status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
