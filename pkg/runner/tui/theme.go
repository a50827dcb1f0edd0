package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the Lip Gloss styles used by the list view.
type Theme struct {
	Title       lipgloss.Style
	Filter      lipgloss.Style
	FilterOn    lipgloss.Style
	Cursor      lipgloss.Style
	Done        lipgloss.Style
	Open        lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		FilterOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Underline(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Open:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
