package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/theme"
)

func (s *ReportScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := s.renderBody(cw)

	lines := strings.Split(body, "\n")
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	return components.Panel(strings.Join(lines[s.scroll:end], "\n"), width, height)
}

func (s *ReportScreen) renderBody(cw int) string {
	r := s.result
	primary, _ := disc.StyleFor(r.Primary)

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render(
		fmt.Sprintf("%s, your primary style is %s", s.submission.Respondent.Name, primary.Title)))

	styles := theme.CategoryBadge(r.Primary) + " " + primary.Title
	if r.HasSecondary() {
		styles += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  secondary ") +
			theme.CategoryBadge(r.Secondary) + " " + disc.Title(r.Secondary)
	}
	sections = append(sections, components.Centered(styles, cw))

	sections = append(sections, theme.Body.Width(cw).Render(r.Narrative))

	sections = append(sections, components.Card(components.ProfileChart{
		Profile:   r.Profile,
		Width:     cw - 4,
		Highlight: r.Primary,
	}.View(), cw))

	if r.HasSecondary() {
		if combo := disc.Combination(r.Primary, r.Secondary); combo != "" {
			sections = append(sections,
				theme.Heading.Render("Your style combination")+"\n"+theme.Body.Width(cw).Render(combo))
		}
	}

	sections = append(sections,
		renderList("Strengths", primary.Strengths, cw),
		renderList("Challenges", primary.Challenges, cw),
		theme.Heading.Render("Communication tips")+"\n"+theme.Body.Width(cw).Render(primary.Communication),
	)

	sections = append(sections, s.renderSaveStatus(cw))

	return strings.Join(sections, "\n\n")
}

func renderList(title string, items []string, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title))
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw).Render("  • " + item))
	}
	return b.String()
}

func (s *ReportScreen) renderSaveStatus(cw int) string {
	switch s.save {
	case saved:
		return theme.Hint.Width(cw).Render("✓ Your results have been saved.")
	case saveFailed:
		return theme.Warning.Width(cw).Render("⚠ Your results could not be saved. Your profile is shown above; press R to try again.")
	default:
		return theme.Hint.Width(cw).Render("Saving your results…")
	}
}
