package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, cfg.PageSize)
	}
	if cfg.KeyMappings != DefaultKeyMappings() {
		t.Errorf("Expected default key mappings, got %+v", cfg.KeyMappings)
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "queso")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	partial := "page_size: 50\nkey_mappings:\n  quit: x\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.PageSize != 50 {
		t.Errorf("Expected page size 50, got %d", cfg.PageSize)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Expected quit key x, got %q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddCheese != "a" {
		t.Errorf("Unset mappings should fall back to defaults, got %q", cfg.KeyMappings.AddCheese)
	}
}

func TestApplyDefaultsClampsPageSize(t *testing.T) {
	cfg := &Config{PageSize: 10000}
	cfg.applyDefaults()
	if cfg.PageSize != maxPageSize {
		t.Errorf("Expected page size clamped to %d, got %d", maxPageSize, cfg.PageSize)
	}

	cfg = &Config{PageSize: -1}
	cfg.applyDefaults()
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Expected page size reset to %d, got %d", DefaultPageSize, cfg.PageSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.PageSize = 42
	cfg.KeyMappings.MoveUp = "u"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if loaded.PageSize != 42 {
		t.Errorf("Expected page size 42 after reload, got %d", loaded.PageSize)
	}
	if loaded.KeyMappings.MoveUp != "u" {
		t.Errorf("Expected move up key u after reload, got %q", loaded.KeyMappings.MoveUp)
	}
}
