package tui

import "github.com/charmbracelet/lipgloss"

// ColorDim renders secondary text such as commit hashes
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(text)
}

// ColorStashName renders a stash selector like stash@{0}
func ColorStashName(name string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		Render(name)
}
