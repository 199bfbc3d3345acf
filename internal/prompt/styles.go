package prompt

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	question lipgloss.Style
	index    lipgloss.Style
	cursor   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		question: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		index: r.NewStyle().
			Foreground(lipgloss.Color("242")),
		cursor: r.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
	}
}
