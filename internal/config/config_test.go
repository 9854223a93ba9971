package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AutoAdvance != DefaultAutoAdvance {
		t.Errorf("AutoAdvance = %v, want %v", cfg.AutoAdvance, DefaultAutoAdvance)
	}
	if cfg.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.HistoryLimit, DefaultHistoryLimit)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestLoadOverlaysFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `db_path = "/tmp/custom.db"
auto_advance_ms = 750
history_limit = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AutoAdvance != 750*time.Millisecond {
		t.Errorf("AutoAdvance = %v", cfg.AutoAdvance)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("auto_advance_ms = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Explicit zero disables the delay.
	if cfg.AutoAdvance != 0 {
		t.Errorf("AutoAdvance = %v, want 0", cfg.AutoAdvance)
	}
	if cfg.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.HistoryLimit, DefaultHistoryLimit)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("history_limit = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	got := DefaultConfigPath()
	want := filepath.Join("/custom/config", "flashdeck", "config.toml")
	if got != want {
		t.Errorf("DefaultConfigPath = %q, want %q", got, want)
	}
}
