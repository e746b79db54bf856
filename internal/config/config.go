// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultAdminPassword is the shared secret used when none is configured.
const DefaultAdminPassword = "admin123"

// Config holds settings read from DISC_* environment variables.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG data default.
	DBPath        string     `env:"DISC_DB"`
	AdminPassword string     `env:"DISC_ADMIN_PASSWORD" envDefault:"admin123"`
	LogFile       string     `env:"DISC_LOG_FILE"`
	LogLevel      slog.Level `env:"DISC_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment and fills path defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return Config{}, err
		}
		cfg.LogFile = p
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/disc/disc.log
// 2. ~/.local/state/disc/disc.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "disc", "disc.log"), nil
}
