package tui

import "github.com/charmbracelet/lipgloss"

// Styles controls how cells and the status line are drawn.
type Styles struct {
	Cell      lipgloss.Style
	CellAlt   lipgloss.Style // Every other row
	Status    lipgloss.Style
	StatusKey lipgloss.Style
}

// DefaultStyles returns a muted two-tone grid with a reversed status line.
func DefaultStyles() Styles {
	return Styles{
		Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CellAlt:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Reverse(true),
		StatusKey: lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}
