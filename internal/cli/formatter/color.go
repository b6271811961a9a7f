package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette used by every planctl view.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style of a plan or review status. Plan statuses are
// upper case and team/desk statuses lower case; both map to the same colors.
func StatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "draft":
		return StyleYellow
	case "submitted":
		return StyleBlue
	case "approved", "reviewed":
		return StyleGreen
	case "rejected":
		return StyleRed
	case "revision_requested":
		return StylePurple
	default:
		return StyleDim
	}
}
