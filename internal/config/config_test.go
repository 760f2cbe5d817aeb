package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dashboard.Section != nil || cfg.Log.File != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[dashboard]
section = "voice"
color = "never"
plot-height = 10
mouse = false

[log]
file = "/tmp/tpdash.log"
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dashboard.Section == nil || *cfg.Dashboard.Section != "voice" {
		t.Fatalf("unexpected section %v", cfg.Dashboard.Section)
	}
	if cfg.Dashboard.Color == nil || *cfg.Dashboard.Color != "never" {
		t.Fatalf("unexpected color %v", cfg.Dashboard.Color)
	}
	if cfg.Dashboard.PlotHeight == nil || *cfg.Dashboard.PlotHeight != 10 {
		t.Fatalf("unexpected plot height %v", cfg.Dashboard.PlotHeight)
	}
	if cfg.Dashboard.Mouse == nil || *cfg.Dashboard.Mouse {
		t.Fatalf("expected mouse=false")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected level %v", cfg.Log.Level)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[dashboard]\ntheme = \"light\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "dashboard.theme") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	if got, want := DefaultConfigPath(), filepath.Join(dir, "tpdash", "config.toml"); got != want {
		t.Fatalf("config path = %q, want %q", got, want)
	}
	if got, want := DefaultLogPath(), filepath.Join(dir, "tpdash", "tpdash.log"); got != want {
		t.Fatalf("log path = %q, want %q", got, want)
	}
}
