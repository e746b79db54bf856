package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/dashboard"
	"github.com/abhisek/disc/internal/screens/intake"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome() *HomeScreen {
	return New(screen.Env{Catalog: catalog.Default()})
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestHome_EnterStartsIntake(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*intake.IntakeScreen); !ok {
		t.Error("expected intake screen")
	}
}

func TestHome_NavigateToAdmin(t *testing.T) {
	h := testHome()
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*dashboard.DashboardScreen); !ok {
		t.Error("expected dashboard screen")
	}
}

func TestHome_Hotkeys(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(keyPress('a'))
	if _, ok := pushed(t, cmd).(*dashboard.DashboardScreen); !ok {
		t.Error("expected dashboard screen for 'a'")
	}

	_, cmd = h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_View(t *testing.T) {
	h := testHome()
	if h.View(120, 34) == "" {
		t.Error("expected non-empty view")
	}
	if h.View(80, 18) == "" {
		t.Error("expected non-empty compact view")
	}
}
