package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if p.Theme != "synthwave" {
		t.Fatalf("expected default theme, got %q", p.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "accessibility"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	p := Load(path)
	if p.Theme != "accessibility" {
		t.Fatalf("expected saved theme, got %q", p.Theme)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "synthwave"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected prefs file to exist: %v", err)
	}
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := Load(path)
	if p.Theme != "synthwave" {
		t.Fatalf("expected default theme on malformed file, got %q", p.Theme)
	}
}

func TestLoadEmptyThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := Load(path)
	if p.Theme != "synthwave" {
		t.Fatalf("expected default theme for empty value, got %q", p.Theme)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/.config/fraglens/prefs.toml")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	want := filepath.Join(home, ".config", "fraglens", "prefs.toml")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
