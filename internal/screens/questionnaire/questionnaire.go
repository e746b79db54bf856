// Package questionnaire walks the respondent through the question catalog.
package questionnaire

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/report"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
)

const (
	noticeIncomplete = "Pick both the statement most like you and the one least like you to continue."
	noticeSubmit     = "Every question needs both picks before you can submit."
)

// QuestionnaireScreen shows one question at a time.
type QuestionnaireScreen struct {
	env         screen.Env
	session     *assessment.Session
	picker      components.MostLeastPicker
	notice      string
	confirmQuit bool
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)
var _ screen.EscapeHandler = (*QuestionnaireScreen)(nil)

// New creates the screen for a started session.
func New(env screen.Env, session *assessment.Session) *QuestionnaireScreen {
	s := &QuestionnaireScreen{env: env, session: session}
	s.syncPicker()
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return "Assessment"
}

// HandlesEscape keeps Esc from discarding answers without confirmation.
func (s *QuestionnaireScreen) HandlesEscape() bool {
	return true
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard answers"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "M", Description: "Most like me"},
		{Key: "L", Description: "Least like me"},
		{Key: "←", Description: "Back"},
	}
	if s.session.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.env.Log().Info("assessment abandoned", "answered", s.session.Answered())
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "m", "M":
		s.pick(s.session.SelectMostLikely)
		return s, nil
	case "l", "L":
		s.pick(s.session.SelectLeastLikely)
		return s, nil
	case "right", "n":
		s.next()
		return s, nil
	case "left", "p":
		if s.session.Previous() {
			s.notice = ""
			s.syncPicker()
		}
		return s, nil
	case "enter":
		if s.session.IsLast() {
			return s, s.submit()
		}
		s.next()
		return s, nil
	}

	s.picker, _ = s.picker.Update(msg)
	return s, nil
}

// pick applies the option under the cursor through sel.
func (s *QuestionnaireScreen) pick(sel func(questionID int, c disc.Category) error) {
	q, ok := s.session.Current()
	if !ok || s.picker.Cursor >= len(q.Options) {
		return
	}
	if err := sel(q.ID, q.Options[s.picker.Cursor].Category); err != nil {
		s.env.Log().Warn("selection rejected", "question", q.ID, "error", err)
		return
	}
	s.notice = ""
	s.syncMarks(q)
}

func (s *QuestionnaireScreen) next() {
	if s.session.IsLast() {
		return
	}
	if !s.session.Next() {
		s.notice = noticeIncomplete
		return
	}
	s.notice = ""
	s.syncPicker()
}

func (s *QuestionnaireScreen) submit() tea.Cmd {
	sub, ok := s.session.Submit()
	if !ok {
		if !s.session.Collector().IsFullyAnswered(s.currentID()) {
			s.notice = noticeIncomplete
		} else {
			s.notice = noticeSubmit
		}
		return nil
	}
	s.env.Log().Info("assessment submitted", "id", sub.ID)
	next := report.New(s.env, sub)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuestionnaireScreen) currentID() int {
	q, _ := s.session.Current()
	return q.ID
}

// syncPicker rebuilds the picker for the current question.
func (s *QuestionnaireScreen) syncPicker() {
	q, ok := s.session.Current()
	if !ok {
		s.picker = components.NewMostLeastPicker(nil)
		return
	}
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	s.picker = components.NewMostLeastPicker(opts)
	s.syncMarks(q)
}

// syncMarks mirrors the recorded answer onto the picker marks.
func (s *QuestionnaireScreen) syncMarks(q catalog.Question) {
	a := s.session.CurrentAnswer()
	s.picker.Most = optionIndex(q, a.MostLikely)
	s.picker.Least = optionIndex(q, a.LeastLikely)
}

func optionIndex(q catalog.Question, c disc.Category) int {
	if !c.IsSet() {
		return components.NoMark
	}
	for i, o := range q.Options {
		if o.Category == c {
			return i
		}
	}
	return components.NoMark
}
