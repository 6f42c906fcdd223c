// Package tui provides the terminal user interface for stashit.
//
// It handles:
//   - Confirmation prompts (using survey)
//   - The interactive stash picker (using bubbletea)
//   - Structured logging and failure reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
