package screen

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/admin"
	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is an optional interface for screens that consume Esc
// themselves instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// ResultStore is the persistence the screens need.
type ResultStore interface {
	Append(ctx context.Context, r store.StoredResult) error
	ListAll(ctx context.Context) ([]store.StoredResult, error)
	ClearAll(ctx context.Context) error
}

// Env carries the collaborators shared by every screen.
type Env struct {
	Catalog *catalog.Catalog
	Results ResultStore
	Gate    *admin.Gate
	Logger  *slog.Logger
	// Now is the clock used for submissions. Nil means time.Now.
	Now func() time.Time
}

// Clock returns e.Now or time.Now.
func (e Env) Clock() func() time.Time {
	if e.Now != nil {
		return e.Now
	}
	return time.Now
}

// Log returns e.Logger or a discarding logger.
func (e Env) Log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}
