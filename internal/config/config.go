// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// InMemoryDB keeps the schedule for the lifetime of the process only.
const InMemoryDB = ":memory:"

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file, or InMemoryDB.
	DBPath string
	// LogUseCases writes one slog line per service use case to stderr.
	LogUseCases bool
	// ImportPath is imported into a schedule that has never been saved.
	ImportPath string
	// NoColor forces plain output.
	NoColor bool
}

// DefaultConfig returns the defaults for a user whose home directory is
// home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath: filepath.Join(home, ".trackflow", "trackflow.db"),
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. Malformed booleans are ignored.
func Load() (Config, error) {
	var cfg Config
	if v := os.Getenv("TRACKFLOW_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg = DefaultConfig(home)
	}

	if v := os.Getenv("TRACKFLOW_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	cfg.ImportPath = os.Getenv("TRACKFLOW_IMPORT")
	// https://no-color.org: any non-empty value disables colour.
	cfg.NoColor = os.Getenv("NO_COLOR") != ""

	return cfg, nil
}

// Persistent reports whether the schedule is kept between runs.
func (c Config) Persistent() bool {
	return c.DBPath != InMemoryDB
}
