package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
)

// Color palette: calm, professional, readable on dark terminals
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Style colors, one per DISC category
var (
	Dominance         = lipgloss.Color("#EF4444") // Red
	Influence         = lipgloss.Color("#EAB308") // Yellow
	Steadiness        = lipgloss.Color("#22C55E") // Green
	Conscientiousness = lipgloss.Color("#3B82F6") // Blue
)

// CategoryColor returns the color for c, or TextDim when c is unset.
func CategoryColor(c disc.Category) color.Color {
	switch c {
	case disc.Dominance:
		return Dominance
	case disc.Influence:
		return Influence
	case disc.Steadiness:
		return Steadiness
	case disc.Conscientiousness:
		return Conscientiousness
	default:
		return TextDim
	}
}

// CategoryBadge renders c as a bold colored letter.
func CategoryBadge(c disc.Category) string {
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Bold(true).
		Render(c.String())
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	MostMark = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	LeastMark = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
