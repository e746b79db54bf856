// Package intake collects the respondent's name, email and consent before
// an assessment starts.
package intake

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/questionnaire"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// ConsentText is the statement the respondent must accept.
const ConsentText = "I consent to my assessment results being stored and analyzed"

const (
	focusName = iota
	focusEmail
	focusConsent
	focusCount
)

// IntakeScreen is the respondent details form.
type IntakeScreen struct {
	env     screen.Env
	name    components.Field
	email   components.Field
	consent components.Checkbox
	focus   int
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake form with the name field focused.
func New(env screen.Env) *IntakeScreen {
	s := &IntakeScreen{
		env:     env,
		name:    components.NewField("Full name", "Jane Doe", 100),
		email:   components.NewField("Email", "jane@example.com", 254),
		consent: components.NewCheckbox(ConsentText),
	}
	return s
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

func (s *IntakeScreen) Title() string {
	return "Your Details"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
	}
	if s.focus == focusConsent {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.forward(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "enter":
		if s.focus < focusConsent {
			return s, s.setFocus(s.focus + 1)
		}
		return s, s.submit()
	}
	return s, s.forward(msg)
}

func (s *IntakeScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
	case focusEmail:
		s.email, cmd = s.email.Update(msg)
	case focusConsent:
		s.consent, cmd = s.consent.Update(msg)
	}
	return cmd
}

func (s *IntakeScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.name.Blur()
	s.email.Blur()
	s.consent.Focused = false

	switch f {
	case focusName:
		return s.name.Focus()
	case focusEmail:
		return s.email.Focus()
	default:
		s.consent.Focused = true
		return nil
	}
}

// submit starts a session. Every invalid field gets its own message; on
// success the form is replaced by the questionnaire.
func (s *IntakeScreen) submit() tea.Cmd {
	s.name.Err, s.email.Err, s.consent.Err = "", "", ""

	sess := assessment.NewSession(s.env.Catalog, assessment.WithClock(s.env.Clock()))
	respondent := disc.Respondent{Name: s.name.Value(), Email: s.email.Value()}
	if err := sess.Start(respondent, s.consent.Checked); err != nil {
		first := -1
		for _, ve := range assessment.ValidationErrors(err) {
			switch ve.Field {
			case assessment.FieldName:
				s.name.Err = ve.Reason
				first = pickFirst(first, focusName)
			case assessment.FieldEmail:
				s.email.Err = ve.Reason
				first = pickFirst(first, focusEmail)
			case assessment.FieldConsent:
				s.consent.Err = ve.Reason
				first = pickFirst(first, focusConsent)
			}
		}
		s.env.Log().Debug("intake rejected", "fields", strings.Join(assessment.InvalidFields(err), ","))
		if first >= 0 {
			return s.setFocus(first)
		}
		return nil
	}

	s.env.Log().Info("assessment started")
	next := questionnaire.New(s.env, sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func pickFirst(current, candidate int) int {
	if current < 0 || candidate < current {
		return candidate
	}
	return current
}

func (s *IntakeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	intro := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Render("Tell us who you are. Your answers are saved on this machine so an administrator can review them.")

	sections := []string{
		theme.Title.Width(cw).Render("Before you begin"),
		intro,
		s.name.View(),
		s.email.View(),
		s.consent.View(cw),
	}

	return components.Panel(
		lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n")),
		width, height,
	)
}
