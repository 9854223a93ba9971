// Package config provides TOML configuration and XDG path helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultAutoAdvance is the pause before moving to the next card after a
// response is recorded.
const DefaultAutoAdvance = 500 * time.Millisecond

// DefaultHistoryLimit caps how many past sessions the analytics screen lists.
const DefaultHistoryLimit = 50

// Config is the fully resolved runtime configuration.
type Config struct {
	DBPath       string
	AutoAdvance  time.Duration
	HistoryLimit int
}

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish unset values from explicit zeroes.
type FileConfig struct {
	DBPath        *string `toml:"db_path"`
	AutoAdvanceMs *int    `toml:"auto_advance_ms"`
	HistoryLimit  *int    `toml:"history_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AutoAdvance:  DefaultAutoAdvance,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load reads the TOML config at path and overlays it onto the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	var file FileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if file.DBPath != nil {
		cfg.DBPath = *file.DBPath
	}
	if file.AutoAdvanceMs != nil && *file.AutoAdvanceMs >= 0 {
		cfg.AutoAdvance = time.Duration(*file.AutoAdvanceMs) * time.Millisecond
	}
	if file.HistoryLimit != nil && *file.HistoryLimit > 0 {
		cfg.HistoryLimit = *file.HistoryLimit
	}
	return cfg, nil
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdgConfigHome(), "flashdeck", "config.toml")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
