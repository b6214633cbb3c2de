package ui

import "testing"

func TestGetThemeKnownNames(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q) returned theme %q", name, th.Name)
		}
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	th := GetTheme("does-not-exist")
	if th.Name != "synthwave" {
		t.Fatalf("expected synthwave fallback, got %q", th.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("expected cycle back to %q, got %q", names[0], current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("theme %q never visited", name)
		}
	}
}

func TestAccessibilityDisablesEffects(t *testing.T) {
	if GetTheme("accessibility").Fx {
		t.Fatal("accessibility theme must not animate")
	}
	if !GetTheme("synthwave").Fx {
		t.Fatal("synthwave theme should animate")
	}
}
