package shared

import (
	"github.com/charmbracelet/lipgloss"

	"pindash/config"
)

var (
	// List pane
	TitleStyle    lipgloss.Style
	SortModeStyle lipgloss.Style
	CursorStyle   lipgloss.Style
	StemStyle     lipgloss.Style

	// Detail pane
	DetailTitleStyle lipgloss.Style
	FieldHeaderStyle lipgloss.Style
	WarningStyle     lipgloss.Style
	PlaceholderStyle lipgloss.Style

	// Footer
	KeyStyle     lipgloss.Style
	BracketStyle lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style
	ErrorStyle     lipgloss.Style

	// Help overlay
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG))

	SortModeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	CursorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.CursorFG)).
		Background(lipgloss.Color(theme.CursorBG))

	StemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	DetailTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	FieldHeaderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Header))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))

	PlaceholderStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(theme.Dim))

	KeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	BracketStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Padding(1, 2)
}

func init() {
	// Initialize with defaults so styles work even without explicit InitStyles call
	InitStyles(config.DefaultTheme())
}
