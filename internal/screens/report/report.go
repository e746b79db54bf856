// Package report shows the respondent their scored profile and saves the
// submission in the background.
package report

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/results"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/scoring"
	"github.com/abhisek/disc/internal/ui/layout"
)

type saveState int

const (
	saving saveState = iota
	saved
	saveFailed
)

// resultSavedMsg reports the outcome of persisting the submission.
type resultSavedMsg struct {
	Err error
}

// ReportScreen displays a scored submission.
type ReportScreen struct {
	env        screen.Env
	submission assessment.Submission
	result     scoring.Result
	save       saveState
	scroll     int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)
var _ screen.EscapeHandler = (*ReportScreen)(nil)

// New scores sub for display. Saving starts when the screen is initialized
// and never blocks the display.
func New(env screen.Env, sub assessment.Submission) *ReportScreen {
	return &ReportScreen{
		env:        env,
		submission: sub,
		result:     scoring.Score(sub.RawAnswers),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	return s.saveCmd()
}

func (s *ReportScreen) saveCmd() tea.Cmd {
	repo := s.env.Results
	record := results.Record(s.submission)
	return func() tea.Msg {
		if repo == nil {
			return resultSavedMsg{}
		}
		return resultSavedMsg{Err: repo.Append(context.Background(), record)}
	}
}

func (s *ReportScreen) Title() string {
	return "Your Profile"
}

// HandlesEscape makes Esc return home instead of to the questionnaire.
func (s *ReportScreen) HandlesEscape() bool {
	return true
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
	}
	if s.save == saveFailed {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry save"})
	}
	return hints
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		if msg.Err != nil {
			s.save = saveFailed
			s.env.Log().Warn("saving result failed", "id", s.submission.ID, "error", msg.Err)
		} else {
			s.save = saved
			s.env.Log().Info("result saved", "id", s.submission.ID)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "r", "R":
			if s.save == saveFailed {
				s.save = saving
				return s, s.saveCmd()
			}
		}
	}
	return s, nil
}

// Result returns the displayed profile.
func (s *ReportScreen) Result() scoring.Result {
	return s.result
}
