package intake

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/questionnaire"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testIntake() *IntakeScreen {
	s := New(screen.Env{Catalog: catalog.Default()})
	s.Init()
	return s
}

func TestIntake_Title(t *testing.T) {
	s := testIntake()
	if s.Title() != "Your Details" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestIntake_TabCyclesFocus(t *testing.T) {
	s := testIntake()
	if s.focus != focusName {
		t.Fatalf("initial focus = %d, want name", s.focus)
	}

	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusEmail || !s.email.Focused() || s.name.Focused() {
		t.Errorf("after tab: focus = %d", s.focus)
	}
	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusConsent || !s.consent.Focused {
		t.Errorf("after second tab: focus = %d", s.focus)
	}
	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusName {
		t.Errorf("focus should wrap to name, got %d", s.focus)
	}
}

func TestIntake_EnterOnEmptyFormReportsEveryField(t *testing.T) {
	s := testIntake()

	// Enter walks name -> email -> consent, then submits.
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if s.name.Err == "" {
		t.Error("expected name error")
	}
	if s.email.Err == "" {
		t.Error("expected email error")
	}
	if s.consent.Err == "" {
		t.Error("expected consent error")
	}
	if s.focus != focusName {
		t.Errorf("focus should move to first invalid field, got %d", s.focus)
	}
}

func TestIntake_EmailWithoutAt(t *testing.T) {
	s := testIntake()
	s.name.SetValue("Ada")
	s.email.SetValue("ada.example.com")
	s.consent.Checked = true
	s.setFocus(focusConsent)

	s.Update(specialKey(tea.KeyEnter))

	if s.name.Err != "" || s.consent.Err != "" {
		t.Errorf("unexpected errors: name=%q consent=%q", s.name.Err, s.consent.Err)
	}
	if s.email.Err == "" {
		t.Error("expected email error")
	}
	if s.focus != focusEmail {
		t.Errorf("focus = %d, want email", s.focus)
	}
}

func TestIntake_SpaceTogglesConsent(t *testing.T) {
	s := testIntake()
	s.setFocus(focusConsent)

	s.Update(keyPress(' '))
	if !s.consent.Checked {
		t.Fatal("expected consent checked after space")
	}
	s.Update(keyPress(' '))
	if s.consent.Checked {
		t.Fatal("expected consent unchecked after second space")
	}
}

func TestIntake_ValidSubmitReplacesWithQuestionnaire(t *testing.T) {
	s := testIntake()
	s.name.SetValue("  Ada Lovelace ")
	s.email.SetValue("ada@example.com")
	s.consent.Checked = true
	s.setFocus(focusConsent)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after valid submit")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*questionnaire.QuestionnaireScreen); !ok {
		t.Errorf("expected questionnaire screen, got %T", msg.Screen)
	}
}

func TestIntake_View(t *testing.T) {
	s := testIntake()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
