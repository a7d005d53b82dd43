package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders a small colored block for a literal color value. Values
// without the "#" marker render as a neutral placeholder instead.
func Swatch(value string) string {
	if !strings.HasPrefix(value, "#") {
		return "··"
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
}

// Heading styles a group or category header for terminal display.
func Heading(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}
