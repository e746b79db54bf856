// Package dashboard is the password-gated admin view of stored results.
package dashboard

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/results"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
)

// resultsLoadedMsg carries freshly loaded and rescored entries.
type resultsLoadedMsg struct {
	Entries []results.Entry
	Err     error
}

// resultsClearedMsg reports the outcome of clearing the store.
type resultsClearedMsg struct {
	Err error
}

// DashboardScreen lists stored assessments once unlocked.
type DashboardScreen struct {
	env      screen.Env
	password components.Field
	unlocked bool

	entries  []results.Entry
	filter   results.Filter
	cursor   int
	expanded bool
	loading  bool

	confirmClear bool
	errMsg       string
	notice       string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.EscapeHandler = (*DashboardScreen)(nil)

// New creates a locked dashboard.
func New(env screen.Env) *DashboardScreen {
	return &DashboardScreen{
		env:      env,
		password: components.NewPasswordField("Admin password"),
		filter:   results.All,
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.password.Focus()
}

func (s *DashboardScreen) Title() string {
	return "Admin Dashboard"
}

// HandlesEscape lets Esc back out of the detail view and the clear prompt.
func (s *DashboardScreen) HandlesEscape() bool {
	return s.confirmClear || s.expanded
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	switch {
	case !s.unlocked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "Esc", Description: "Back"},
		}
	case s.confirmClear:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete all results"},
			{Key: "N", Description: "Cancel"},
		}
	case s.expanded:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter/Esc", Description: "Close details"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Details"},
		{Key: "A/D/I/S/C", Description: "Filter"},
		{Key: "R", Description: "Refresh"},
		{Key: "X", Description: "Clear all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = loadErrorText(msg.Err)
			s.env.Log().Warn("loading results failed", "error", msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.entries = msg.Entries
		s.clampCursor()
		return s, nil

	case resultsClearedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not clear results: " + msg.Err.Error()
			s.env.Log().Warn("clearing results failed", "error", msg.Err)
			return s, nil
		}
		s.env.Log().Info("results cleared from dashboard", "count", len(s.entries))
		s.entries = nil
		s.cursor = 0
		s.expanded = false
		s.notice = "All assessment results have been cleared."
		return s, nil

	case tea.KeyMsg:
		if !s.unlocked {
			return s.handleLockedKey(msg)
		}
		return s.handleKey(msg)
	}

	if !s.unlocked {
		var cmd tea.Cmd
		s.password, cmd = s.password.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) handleLockedKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		s.password, cmd = s.password.Update(msg)
		return s, cmd
	}

	if s.env.Gate == nil || s.env.Gate.Check(s.password.Value()) != nil {
		s.password.Reset()
		s.password.Err = "Incorrect password"
		s.env.Log().Warn("admin unlock rejected")
		return s, nil
	}

	s.unlocked = true
	s.password.Reset()
	s.password.Blur()
	s.env.Log().Info("admin dashboard unlocked")
	return s, s.loadCmd()
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmClear {
		switch key {
		case "y", "Y":
			s.confirmClear = false
			return s, s.clearCmd()
		case "n", "N", "esc":
			s.confirmClear = false
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible())-1 {
			s.cursor++
		}
	case "enter":
		if len(s.visible()) > 0 {
			s.expanded = !s.expanded
		}
	case "esc":
		s.expanded = false
	case "r", "R":
		s.notice = ""
		return s, s.loadCmd()
	case "x", "X":
		s.notice = ""
		s.confirmClear = true
	case "a", "A":
		s.setFilter(results.All)
	case "d", "D", "i", "I", "s", "S", "c", "C":
		c, err := disc.ParseCategory(key)
		if err == nil {
			s.setFilter(results.Filter{Primary: c})
		}
	}
	return s, nil
}

func (s *DashboardScreen) setFilter(f results.Filter) {
	s.filter = f
	s.cursor = 0
	s.expanded = false
}

func (s *DashboardScreen) visible() []results.Entry {
	return results.FilterByPrimary(s.entries, s.filter)
}

func (s *DashboardScreen) clampCursor() {
	n := len(s.visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if n == 0 {
		s.expanded = false
	}
}

func (s *DashboardScreen) loadCmd() tea.Cmd {
	s.loading = true
	repo := s.env.Results
	return func() tea.Msg {
		if repo == nil {
			return resultsLoadedMsg{}
		}
		entries, err := results.Load(context.Background(), repo)
		return resultsLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *DashboardScreen) clearCmd() tea.Cmd {
	repo := s.env.Results
	return func() tea.Msg {
		if repo == nil {
			return resultsClearedMsg{}
		}
		return resultsClearedMsg{Err: repo.ClearAll(context.Background())}
	}
}

func loadErrorText(err error) string {
	if errors.Is(err, store.ErrStorageUnavailable) {
		return "Result storage is unavailable. Press R to try again."
	}
	return "Failed to load assessment results."
}
