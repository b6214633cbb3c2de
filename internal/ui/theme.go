package ui

import "fraglens/internal/surface"

// Theme defines the colors for the UI. Fx controls whether the animated
// effects run; the accessibility theme disables them for reduced motion.
type Theme struct {
	Name string

	Title      surface.RGB
	Highlight  surface.RGB
	Text       surface.RGB
	Gauge      surface.RGB
	Border     surface.RGB
	Background surface.RGB

	Fx bool
}

var themes = map[string]Theme{
	"synthwave":     synthwaveTheme(),
	"accessibility": accessibilityTheme(),
}

var themeOrder = []string{"synthwave", "accessibility"}

// GetTheme returns a theme by name, defaulting to synthwave.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return synthwaveTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func synthwaveTheme() Theme {
	return Theme{
		Name:       "synthwave",
		Title:      surface.MustHex("#f861b4"),
		Highlight:  surface.MustHex("#00d3bb"),
		Text:       surface.MustHex("#a1b1ff"),
		Gauge:      surface.MustHex("#500323"),
		Border:     surface.MustHex("#422ad5"),
		Background: surface.MustHex("#09002f"),
		Fx:         true,
	}
}

func accessibilityTheme() Theme {
	// Okabe-Ito colorblind-safe palette, effects off.
	return Theme{
		Name:       "accessibility",
		Title:      surface.MustHex("#cc79a7"),
		Highlight:  surface.MustHex("#009e73"),
		Text:       surface.MustHex("#56b4e9"),
		Gauge:      surface.MustHex("#e69f00"),
		Border:     surface.MustHex("#422ad5"),
		Background: surface.MustHex("#000000"),
		Fx:         false,
	}
}
