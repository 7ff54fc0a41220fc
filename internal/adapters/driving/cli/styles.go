package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Report styles, kept subtle so output stays greppable. When stdout is not
// a terminal lipgloss drops the colour codes entirely.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)
