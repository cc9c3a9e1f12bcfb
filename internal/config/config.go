// Package config reads dbtalk's configuration from environment
// variables, falling back to defaults for anything unset.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite database the user's requests run against.
	DBPath string
	// MetaDBPath is the conversation-history database.
	MetaDBPath string
	// RowLimit caps open-ended SELECTs.
	RowLimit int
	// HistoryLimit is how many turns the history command shows.
	HistoryLimit int
	// NoColor disables styled terminal output.
	NoColor bool
}

// Default returns a Config with sensible defaults. Paths default to
// ~/.dbtalk; an unresolvable home directory falls back to the current
// directory.
func Default() Config {
	base := ".dbtalk"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".dbtalk")
	}
	return Config{
		DBPath:       filepath.Join(base, "data.db"),
		MetaDBPath:   filepath.Join(base, "dbtalk.db"),
		RowLimit:     100,
		HistoryLimit: 20,
	}
}

// Load reads configuration from the environment over Default.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("DBTALK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DBTALK_META_DB"); v != "" {
		cfg.MetaDBPath = v
	}
	if v := os.Getenv("DBTALK_ROW_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RowLimit = n
		}
	}
	if v := os.Getenv("DBTALK_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("DBTALK_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}

	return cfg
}
