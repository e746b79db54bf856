package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/dashboard"
	"github.com/abhisek/disc/internal/screens/intake"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	env  screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE ASSESSMENT", Hotkey: "t", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: intake.New(env)}
			}
		}},
		{Label: "ADMIN DASHBOARD", Hotkey: "a", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(env)}
			}
		}},
		{Label: "EXIT", Hotkey: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	cw := components.ContentWidth(width)

	questions := 0
	if h.env.Catalog != nil {
		questions = h.env.Catalog.Size()
	}

	sections := []string{
		renderTitle(cw, compact),
		renderLegend(cw),
		renderIntro(questions, cw),
		h.menu.View(cw),
	}

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "T/A/Q", Description: "Shortcut"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
