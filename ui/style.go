package ui

import "github.com/charmbracelet/lipgloss"

// Style controls how the widgets render.
type Style struct {
	Prompt lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Log roles: the sender label in front of a message, and system
	// notices.
	Sender lipgloss.Style
	Notice lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Sender: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
