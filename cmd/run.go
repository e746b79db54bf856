package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/disc/internal/admin"
	"github.com/abhisek/disc/internal/app"
	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/config"
	"github.com/abhisek/disc/internal/logging"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/store"
	"github.com/spf13/cobra"
)

// deps holds everything a command needs once config, logging and the store
// are up.
type deps struct {
	cfg     config.Config
	logger  *slog.Logger
	store   *store.Store
	results *store.ResultRepo
	gate    *admin.Gate
	closers []func() error
}

// Close releases the store and the log file.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

// openDeps loads config, builds the logger and opens the result store.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	d := &deps{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st.Close)
	d.results = store.NewResultRepo(st.Blobs(), logger)

	if cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Warn("admin password is the built-in default; set DISC_ADMIN_PASSWORD")
	}
	d.gate = admin.NewGate(cfg.AdminPassword)

	logger.Debug("dependencies ready", "db", dbPath, "command", cmd.CommandPath())
	return d, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startWithIntake bool) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Env: screen.Env{
			Catalog: catalog.Default(),
			Results: d.results,
			Gate:    d.gate,
			Logger:  d.logger,
		},
		StartWithIntake: startWithIntake,
	})
}
