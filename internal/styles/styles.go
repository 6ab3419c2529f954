// Package styles holds the lipgloss palette shared by CLI output and the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette.
var (
	ColorGreen = lipgloss.Color("#22C55E")
	ColorRed   = lipgloss.Color("#EF4444")
	ColorBlue  = lipgloss.Color("#3B82F6")
	ColorGray  = lipgloss.Color("#6B7280")
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	dimStyle     = lipgloss.NewStyle().Foreground(ColorGray)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)
)

// RenderLabel renders a field label.
func RenderLabel(s string) string {
	return labelStyle.Render(s)
}

// RenderDim renders secondary text.
func RenderDim(s string) string {
	return dimStyle.Render(s)
}

// RenderSuccess renders a successful result.
func RenderSuccess(s string) string {
	return successStyle.Render(s)
}

// RenderError renders an error message.
func RenderError(s string) string {
	return errorStyle.Render(s)
}

// RenderBox wraps content in a rounded border.
func RenderBox(content string) string {
	return boxStyle.Render(content)
}

// Plain removes ANSI escape sequences, for output with color disabled.
func Plain(s string) string {
	return ansi.Strip(s)
}
