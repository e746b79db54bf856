package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/store"
)

func testEnv() screen.Env {
	return screen.Env{
		Catalog: catalog.Default(),
		Results: store.NewResultRepo(store.NewMemoryBlobStore(), nil),
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// deliver sends msg through the model and feeds back any router messages
// produced by the returned command.
func deliver(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestStartsOnHome(t *testing.T) {
	m := newAppModel(Options{Env: testEnv()})
	if m.router.Depth() != 1 || m.router.Active().Title() != "Home" {
		t.Fatalf("expected home screen, got %q", m.router.Active().Title())
	}
}

func TestStartWithIntake(t *testing.T) {
	m := newAppModel(Options{Env: testEnv(), StartWithIntake: true})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Your Details" {
		t.Errorf("active = %q", m.router.Active().Title())
	}

	m = deliver(m, specialKey(tea.KeyEscape))
	if m.router.Depth() != 1 {
		t.Errorf("Esc should pop intake, depth = %d", m.router.Depth())
	}
}

func TestEscapeHandlerKeepsScreen(t *testing.T) {
	m := newAppModel(Options{Env: testEnv()})
	m = deliver(m, specialKey(tea.KeyDown)) // Admin
	m = deliver(m, specialKey(tea.KeyEnter))
	if m.router.Active().Title() != "Admin Dashboard" {
		t.Fatalf("active = %q, want dashboard", m.router.Active().Title())
	}

	// Locked dashboard lets Esc go back.
	m = deliver(m, specialKey(tea.KeyEscape))
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Env: testEnv()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewRendersFrame(t *testing.T) {
	m := newAppModel(Options{Env: testEnv()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sized := next.(AppModel)
	if sized.width != 120 || sized.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", sized.width, sized.height)
	}
	_ = sized.View()
	if sized.router.View(120, 34) == "" {
		t.Error("expected active screen content")
	}
}
