// Package logging builds the process logger. The TUI owns the terminal, so
// log records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures the logger.
type Options struct {
	Level slog.Level
	// Path is the log file. Empty discards all records.
	Path string
}

// New creates a text logger writing to opts.Path, creating parent
// directories as needed. The returned close func releases the file.
func New(opts Options) (*slog.Logger, func() error, error) {
	if opts.Path == "" {
		return Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, opts.Level), f.Close, nil
}

// NewWriter creates a text logger writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
