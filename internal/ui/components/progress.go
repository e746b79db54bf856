package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	// Counter, when set, replaces the percentage suffix (e.g. "3/12").
	Counter string
	Width   int
}

// NewStepProgress creates a bar for step current of total, 1-based.
func NewStepProgress(label string, current, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(current) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Counter: fmt.Sprintf("%d/%d", current, total),
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d%%", int(p.Percent*100))
	if p.Counter != "" {
		suffix = "  " + p.Counter
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(suffix)

	return result
}
