package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"pindash/catalog"
	"pindash/tui/shared"
)

// Model renders the info block for the selected table.
type Model struct {
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View(it *catalog.Item, avail catalog.Availability) string {
	var b strings.Builder
	b.WriteString(shared.TitleStyle.Render("Table Info"))
	b.WriteString("\n")
	b.WriteString(strings.Join(Compose(it, avail, time.Now()), "\n"))

	// Width wrap keeps long paths and descriptions inside the pane.
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

// Compose builds the info block for a table in fixed order, omitting lines
// whose field is absent. A nil item yields the placeholder line.
func Compose(it *catalog.Item, avail catalog.Availability, now time.Time) []string {
	if it == nil {
		return []string{shared.PlaceholderStyle.Render("No table selected")}
	}

	lines := []string{
		shared.DetailTitleStyle.Render(it.DisplayLabel()),
		"",
	}
	for _, w := range it.Warnings(avail) {
		lines = append(lines, shared.WarningStyle.Render("⚠ "+w))
	}
	lines = append(lines, field("Path:", it.Path))
	if it.GameName != "" {
		lines = append(lines, field("Game Name:", it.GameName))
	}
	if it.RomPath != "" {
		lines = append(lines, field("Rom Path:", it.RomPath))
	}
	if it.B2SPath != "" {
		lines = append(lines, field("B2S Path:", it.B2SPath))
	}
	lines = append(lines, field("Last Modified:", humanize.RelTime(it.LastModified, now, "ago", "from now")))
	lines = append(lines, "")
	if it.Description != "" {
		lines = append(lines, it.Description)
	}
	return lines
}

func field(label, value string) string {
	return shared.FieldHeaderStyle.Render(fmt.Sprintf("%-15s", label)) + value
}
