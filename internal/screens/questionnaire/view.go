package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	q, ok := s.session.Current()
	if !ok {
		return components.Panel(theme.Hint.Render("No question to show."), width, height)
	}

	cw := components.ContentWidth(width)
	total := s.session.Catalog().Size()

	var b strings.Builder

	b.WriteString(components.NewStepProgress(
		fmt.Sprintf("Question %d", s.session.Index()+1),
		s.session.Index()+1, total, cw,
	).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d answered", s.session.Answered(), total)))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Width(cw).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View(cw))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Width(cw).Render("⚠ " + s.notice))
	}

	return components.Panel(lipgloss.NewStyle().Width(cw).Render(b.String()), width, height)
}

func renderQuitConfirm(width, height int) string {
	body := theme.Heading.Render("Quit the assessment?") + "\n\n" +
		theme.Hint.Render("Your answers so far will be discarded.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Y to quit · N to keep going")
	return components.Panel(body, width, height)
}
