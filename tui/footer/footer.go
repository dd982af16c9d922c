package footer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"pindash/tui/shared"
)

// Render draws one centered footer line of [key → desc] entries separated
// by single spaces, with no trailing separator.
func Render(bindings []key.Binding, width int) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			shared.BracketStyle.Render("[")+
				shared.KeyStyle.Render(h.Key)+
				shared.BracketStyle.Render(" → ")+
				h.Desc+
				shared.BracketStyle.Render("]"))
	}
	line := strings.Join(parts, " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
