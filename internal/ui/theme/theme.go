package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette. Muted background, one strong accent per meaning.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// ForQuality colours a 0-5 review grade: failures red, a hard pass amber,
// anything better green.
func ForQuality(q int) color.Color {
	switch {
	case q < 3:
		return Error
	case q == 3:
		return Accent
	default:
		return Success
	}
}

// ForStatus colours a card review status.
func ForStatus(status string) color.Color {
	switch status {
	case "new":
		return Secondary
	case "due":
		return Accent
	case "overdue":
		return Error
	default:
		return TextDim
	}
}
