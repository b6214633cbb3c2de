package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != DefaultURL {
		t.Fatalf("URL = %q, want %q", cfg.URL, DefaultURL)
	}
	if cfg.LinesPerBlock != DefaultLinesPerBlock || cfg.BlocksPerFragment != DefaultBlocksPerFragment {
		t.Fatalf("windowing defaults = %d/%d, want %d/%d",
			cfg.LinesPerBlock, cfg.BlocksPerFragment, DefaultLinesPerBlock, DefaultBlocksPerFragment)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Fatalf("Temperature = %v, want %v", cfg.Temperature, DefaultTemperature)
	}
}

func TestLoad_ReadsValuesAndKeepsDefaultsForOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
url = "http://localhost:9999/v1/chat/completions"
model = "local-eval"
lines_per_block = 4
theme = "accessibility"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != "http://localhost:9999/v1/chat/completions" {
		t.Fatalf("URL = %q", cfg.URL)
	}
	if cfg.Model != "local-eval" {
		t.Fatalf("Model = %q, want local-eval", cfg.Model)
	}
	if cfg.LinesPerBlock != 4 {
		t.Fatalf("LinesPerBlock = %d, want 4", cfg.LinesPerBlock)
	}
	if cfg.BlocksPerFragment != DefaultBlocksPerFragment {
		t.Fatalf("BlocksPerFragment = %d, want default %d", cfg.BlocksPerFragment, DefaultBlocksPerFragment)
	}
	if cfg.Theme != "accessibility" {
		t.Fatalf("Theme = %q, want accessibility", cfg.Theme)
	}
}

func TestLoad_RejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("url = [broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted malformed TOML")
	}
}

func TestExpandPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/.config/fraglens/config.toml")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "fraglens", "config.toml")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}
