package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	fg    RGB
	bg    RGB
	bgSet bool
}

// Buffer is a width×height grid of styled cells. Widgets draw into it with
// explicit colors; the effect scheduler mutates per-cell foregrounds; String
// serializes the result for the terminal.
type Buffer struct {
	width  int
	height int
	bg     RGB
	cells  []cell
}

// NewBuffer allocates a cleared buffer with the given background color.
func NewBuffer(width, height int, bg RGB) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{width: width, height: height, bg: bg, cells: make([]cell, width*height)}
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', fg: bg}
	}
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Area returns the full drawable rectangle.
func (b *Buffer) Area() Rect {
	return Rect{W: b.width, H: b.height}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Set writes one cell. Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].r = r
		b.cells[i].fg = fg
	}
}

// SetString writes a run of cells left to right, clipping at the right edge.
func (b *Buffer) SetString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg)
		x++
	}
}

// PaintBg overrides the background color of every cell in the rectangle.
func (b *Buffer) PaintBg(r Rect, bg RGB) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if i, ok := b.index(x, y); ok {
				b.cells[i].bg = bg
				b.cells[i].bgSet = true
			}
		}
	}
}

// Fg reads a cell's foreground color; ok is false out of bounds.
func (b *Buffer) Fg(x, y int) (RGB, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return RGB{}, false
	}
	return b.cells[i].fg, true
}

// SetFg rewrites only a cell's foreground color.
func (b *Buffer) SetFg(x, y int, fg RGB) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].fg = fg
	}
}

// Background returns the buffer's base background color.
func (b *Buffer) Background() RGB {
	return b.bg
}

// String serializes the buffer, coalescing horizontally adjacent cells with
// identical styling into a single lipgloss render call per run.
func (b *Buffer) String() string {
	var out strings.Builder
	styles := make(map[[2]RGB]lipgloss.Style)
	var run strings.Builder

	styleFor := func(fg, bg RGB) lipgloss.Style {
		key := [2]RGB{fg, bg}
		if st, ok := styles[key]; ok {
			return st
		}
		st := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg.Hex())).
			Background(lipgloss.Color(bg.Hex()))
		styles[key] = st
		return st
	}

	for y := 0; y < b.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		runFg, runBg := b.bg, b.bg
		run.Reset()
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(styleFor(runFg, runBg).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			bg := b.bg
			if c.bgSet {
				bg = c.bg
			}
			if run.Len() > 0 && (c.fg != runFg || bg != runBg) {
				flush()
			}
			runFg, runBg = c.fg, bg
			run.WriteRune(c.r)
		}
		flush()
	}
	return out.String()
}
