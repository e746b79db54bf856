package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/results"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/theme"
)

// DateFormat is how submission dates are shown in the listing.
const DateFormat = "2006-01-02"

func (s *DashboardScreen) View(width, height int) string {
	if !s.unlocked {
		return s.renderLocked(width, height)
	}
	if s.confirmClear {
		return renderClearConfirm(len(s.entries), width, height)
	}

	cw := width - 6
	if cw < 20 {
		cw = 20
	}

	var sections []string
	sections = append(sections, s.renderSummary(cw))

	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Width(cw).Render("✗ "+s.errMsg))
	}
	if s.notice != "" {
		sections = append(sections, theme.Hint.Width(cw).Render(s.notice))
	}

	visible := s.visible()
	switch {
	case s.loading && len(s.entries) == 0:
		sections = append(sections, theme.Hint.Render("Loading results…"))
	case len(visible) == 0:
		sections = append(sections, theme.Hint.Width(cw).Render(emptyText(s.filter, len(s.entries))))
	case s.expanded:
		sections = append(sections, renderDetail(visible[s.cursor], cw))
	default:
		sections = append(sections, renderTable(visible, s.cursor, cw, height-8))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (s *DashboardScreen) renderLocked(width, height int) string {
	cw := components.ContentWidth(width)
	if cw > 48 {
		cw = 48
	}
	body := theme.Title.Width(cw).Render("Administrator access") + "\n\n" +
		theme.Hint.Width(cw).Render("Enter the admin password to view assessment results.") + "\n\n" +
		s.password.View()
	return components.Panel(lipgloss.NewStyle().Width(cw).Render(body), width, height)
}

func renderClearConfirm(count, width, height int) string {
	body := theme.Heading.Render("Clear all assessment results?") + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("This deletes %d stored result(s) and cannot be undone.", count)) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Y to delete · N to cancel")
	return components.Panel(body, width, height)
}

// renderSummary shows the filter tabs and the primary-style distribution.
func (s *DashboardScreen) renderSummary(cw int) string {
	tabs := []string{tab("All", s.filter.IsAll())}
	for _, c := range disc.AllCategories() {
		tabs = append(tabs, tab(string(c)+" "+disc.Title(c), s.filter.Primary == c))
	}

	dist := results.Distribution(s.entries)
	var counts []string
	for _, c := range disc.AllCategories() {
		counts = append(counts, fmt.Sprintf("%s %d", theme.CategoryBadge(c), dist.Get(c)))
	}
	total := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d total", len(s.entries)))

	return strings.Join(tabs, " ") + "\n" +
		lipgloss.NewStyle().Width(cw).Render(strings.Join(counts, "   ")+"   "+total)
}

func tab(label string, active bool) string {
	if active {
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 1).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1).
		Render(label)
}

func emptyText(f results.Filter, total int) string {
	if total == 0 {
		return "No assessment results found. Once users complete assessments, their results will appear here."
	}
	return fmt.Sprintf("No results with primary style %s.", disc.Title(f.Primary))
}

func renderTable(entries []results.Entry, cursor, cw, maxRows int) string {
	header := fmt.Sprintf("  %-4s %-20s %-26s %-10s %-22s %-22s %4s %4s %4s %4s",
		"#", "Name", "Email", "Date", "Primary", "Secondary", "D", "I", "S", "C")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))

	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if cursor >= maxRows {
		start = cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		e := entries[i]
		p := e.Result.Profile
		row := fmt.Sprintf("%-4d %-20s %-26s %-10s %-22s %-22s %3d%% %3d%% %3d%% %3d%%",
			e.Index,
			truncate(e.Record.Respondent.Name, 20),
			truncate(e.Record.Respondent.Email, 26),
			e.Record.SubmittedAt.Local().Format(DateFormat),
			styleLabel(e.Result.Primary),
			styleLabel(e.DisplaySecondary()),
			p.Percent(disc.Dominance), p.Percent(disc.Influence),
			p.Percent(disc.Steadiness), p.Percent(disc.Conscientiousness),
		)
		b.WriteString("\n")
		if i == cursor {
			b.WriteString(theme.Selected.Render("▸ " + row))
		} else {
			b.WriteString(theme.Unselected.Render("  " + row))
		}
	}
	return b.String()
}

func renderDetail(e results.Entry, cw int) string {
	primary, _ := disc.StyleFor(e.Result.Primary)
	secondary := e.DisplaySecondary()
	p := e.Result.Profile

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("#%d  %s", e.Index, e.Record.Respondent.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · assessed %s",
		e.Record.Respondent.Email, e.Record.SubmittedAt.Local().Format(DateFormat))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Primary:   %s %s\n", theme.CategoryBadge(e.Result.Primary), primary.Title))
	b.WriteString(fmt.Sprintf("Secondary: %s %s\n\n", theme.CategoryBadge(secondary), disc.Title(secondary)))

	var pct []string
	for _, c := range disc.AllCategories() {
		pct = append(pct, fmt.Sprintf("%s %d%%", theme.CategoryBadge(c), p.Percent(c)))
	}
	b.WriteString(strings.Join(pct, "   "))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Strengths"))
	for _, s := range primary.Strengths {
		b.WriteString("\n  • " + s)
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Challenges"))
	for _, c := range primary.Challenges {
		b.WriteString("\n  • " + c)
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Communication style"))
	b.WriteString("\n" + primary.Communication)
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Recommendation"))
	b.WriteString(fmt.Sprintf("\nWhen communicating with %s, it's best to: %s",
		e.Record.Respondent.Name, primary.Communication))

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func styleLabel(c disc.Category) string {
	return fmt.Sprintf("%s - %s", c.String(), disc.Title(c))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
