package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	data := "path: " + filepath.Join(dir, "db") + "\nkey: chores\naddr: 127.0.0.1:9999\nlog-level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".todo.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODO_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected path %q", cfg.BasePath())
	}
	if cfg.Key() != "chores" {
		t.Fatalf("unexpected key %q", cfg.Key())
	}
	if cfg.Addr() != "127.0.0.1:9999" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TODO_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Key() != DefaultKey {
		t.Fatalf("expected default key, got %q", cfg.Key())
	}
	if cfg.BasePath() == DefaultPath || cfg.BasePath() == "" {
		t.Fatalf("expected home-expanded path, got %q", cfg.BasePath())
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TODO_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("TODO_KEY", "errands")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Key() != "errands" {
		t.Fatalf("expected env key, got %q", cfg.Key())
	}
}
