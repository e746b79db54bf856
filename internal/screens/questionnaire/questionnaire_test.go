package questionnaire

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/assessment"
	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/report"
	"github.com/abhisek/disc/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *QuestionnaireScreen {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC) }
	sess := assessment.NewSession(catalog.Default(), assessment.WithClock(clock))
	if err := sess.Start(disc.Respondent{Name: "Ada", Email: "ada@example.com"}, true); err != nil {
		t.Fatalf("start: %v", err)
	}
	return New(screen.Env{Catalog: catalog.Default()}, sess)
}

// answerCurrent marks option most as most-likely and option least as
// least-likely on the current question.
func answerCurrent(s *QuestionnaireScreen, most, least int) {
	s.picker.Cursor = most
	s.Update(keyPress('m'))
	s.picker.Cursor = least
	s.Update(keyPress('l'))
}

func TestQuestionnaire_Title(t *testing.T) {
	s := testScreen(t)
	if s.Title() != "Assessment" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuestionnaire_MarksFollowSelections(t *testing.T) {
	s := testScreen(t)

	s.Update(specialKey(tea.KeyDown))
	s.Update(keyPress('m'))
	if s.picker.Most != 1 {
		t.Errorf("Most = %d, want 1", s.picker.Most)
	}

	q, _ := s.session.Current()
	if got := s.session.CurrentAnswer().MostLikely; got != q.Options[1].Category {
		t.Errorf("recorded most = %v, want %v", got, q.Options[1].Category)
	}

	// Re-marking moves the mark.
	s.Update(keyPress('3'))
	s.Update(keyPress('m'))
	if s.picker.Most != 2 {
		t.Errorf("Most = %d after re-pick, want 2", s.picker.Most)
	}
	if s.picker.Least != components.NoMark {
		t.Errorf("Least = %d, want none", s.picker.Least)
	}
}

func TestQuestionnaire_NextRequiresBothPicks(t *testing.T) {
	s := testScreen(t)

	s.Update(specialKey(tea.KeyRight))
	if s.session.Index() != 0 {
		t.Fatalf("advanced without answers")
	}
	if s.notice == "" {
		t.Error("expected a notice when next is refused")
	}

	s.Update(keyPress('m'))
	s.Update(specialKey(tea.KeyRight))
	if s.session.Index() != 0 {
		t.Fatalf("advanced with only most-likely")
	}

	s.picker.Cursor = 3
	s.Update(keyPress('l'))
	s.Update(specialKey(tea.KeyRight))
	if s.session.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.session.Index())
	}
	if s.notice != "" {
		t.Errorf("notice should clear after advancing, got %q", s.notice)
	}
	if s.picker.Most != components.NoMark || s.picker.Least != components.NoMark {
		t.Error("new question should start without marks")
	}
}

func TestQuestionnaire_PreviousRestoresMarks(t *testing.T) {
	s := testScreen(t)
	answerCurrent(s, 2, 0)
	s.Update(specialKey(tea.KeyRight))

	s.Update(specialKey(tea.KeyLeft))
	if s.session.Index() != 0 {
		t.Fatalf("index = %d, want 0", s.session.Index())
	}
	if s.picker.Most != 2 || s.picker.Least != 0 {
		t.Errorf("marks = %d/%d, want 2/0", s.picker.Most, s.picker.Least)
	}
}

func TestQuestionnaire_SubmitOnLastQuestion(t *testing.T) {
	s := testScreen(t)
	total := s.session.Catalog().Size()

	for i := 0; i < total; i++ {
		answerCurrent(s, 0, 3)
		if i < total-1 {
			s.Update(specialKey(tea.KeyEnter))
		}
	}
	if !s.session.IsLast() {
		t.Fatalf("expected last question, index = %d", s.session.Index())
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on submit")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	rep, ok := msg.Screen.(*report.ReportScreen)
	if !ok {
		t.Fatalf("expected report screen, got %T", msg.Screen)
	}
	if rep.Result().Profile.Total() != total {
		t.Errorf("profile total = %d, want %d", rep.Result().Profile.Total(), total)
	}
	if s.session.State() != assessment.StateCompleted {
		t.Errorf("state = %v, want completed", s.session.State())
	}
}

func TestQuestionnaire_SubmitRefusedWhenIncomplete(t *testing.T) {
	s := testScreen(t)
	total := s.session.Catalog().Size()
	for i := 0; i < total-1; i++ {
		answerCurrent(s, 1, 2)
		s.Update(specialKey(tea.KeyEnter))
	}
	// Last question gets only a most-likely pick.
	s.Update(keyPress('m'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command when submit is refused")
	}
	if s.notice == "" {
		t.Error("expected a notice when submit is refused")
	}
	if s.session.State() != assessment.StateInProgress {
		t.Errorf("state = %v, want in progress", s.session.State())
	}
}

func TestQuestionnaire_QuitConfirm(t *testing.T) {
	s := testScreen(t)
	if !s.HandlesEscape() {
		t.Fatal("questionnaire should handle Esc")
	}

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestQuestionnaire_ViewAndHints(t *testing.T) {
	s := testScreen(t)
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
	s.confirmQuit = true
	if s.View(100, 30) == "" {
		t.Error("expected non-empty quit view")
	}
}
