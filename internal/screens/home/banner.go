package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/ui/theme"
)

// Block-letter title.
const titleFull = `██████╗ ██╗███████╗ ██████╗
██╔══██╗██║██╔════╝██╔════╝
██║  ██║██║███████╗██║
██║  ██║██║╚════██║██║
██████╔╝██║███████║╚██████╗
╚═════╝ ╚═╝╚══════╝ ╚═════╝`

const titleCompact = "D · I · S · C"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderLegend shows the four styles in their colors on one line.
func renderLegend(cw int) string {
	var parts []string
	for _, c := range disc.AllCategories() {
		parts = append(parts, theme.CategoryBadge(c)+" "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(disc.Title(c)))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}

// renderIntro describes the assessment in one dim line.
func renderIntro(questions, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%d questions · pick the statement most and least like you", questions))
}
