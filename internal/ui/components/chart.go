package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/ui/theme"
)

// ProfileChart renders one horizontal bar per DISC category, scaled to the
// largest count.
type ProfileChart struct {
	Profile disc.Profile
	Width   int
	// Highlight is drawn bold. Optional.
	Highlight disc.Category
}

// View renders the chart, one line per category in canonical order.
func (c ProfileChart) View() string {
	maxCount := 0
	for _, cat := range disc.AllCategories() {
		if n := c.Profile.Get(cat); n > maxCount {
			maxCount = n
		}
	}

	const labelWidth = 22
	barWidth := c.Width - labelWidth - 6
	if barWidth < 4 {
		barWidth = 4
	}

	lines := make([]string, 0, 4)
	for _, cat := range disc.AllCategories() {
		n := c.Profile.Get(cat)
		filled := 0
		if maxCount > 0 {
			filled = n * barWidth / maxCount
		}

		labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(labelWidth)
		if cat == c.Highlight {
			labelStyle = labelStyle.Bold(true)
		}
		label := labelStyle.Render(fmt.Sprintf("%s %s", theme.CategoryBadge(cat), disc.Title(cat)))

		bar := lipgloss.NewStyle().
			Background(theme.CategoryColor(cat)).
			Render(strings.Repeat(" ", filled)) +
			theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

		count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3d", n))
		lines = append(lines, label+bar+count)
	}
	return strings.Join(lines, "\n")
}
