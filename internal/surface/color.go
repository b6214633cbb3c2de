package surface

import "fmt"

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as "#rrggbb", the form lipgloss consumes.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MustHex parses "#rrggbb". Theme tables are the only callers, so a bad
// literal is a programming error.
func MustHex(s string) RGB {
	var c RGB
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		panic(fmt.Sprintf("surface: bad hex color %q", s))
	}
	return c
}

// Lerp interpolates between two colors; t is clamped to [0,1].
func Lerp(from, to RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B)}
}
