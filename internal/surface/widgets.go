package surface

import (
	"fmt"
	"strings"
)

// Rounded border pieces, matching the original chrome.
const (
	cornerTL = '╭'
	cornerTR = '╮'
	cornerBL = '╰'
	cornerBR = '╯'
	edgeH    = '─'
	edgeV    = '│'
)

// Border draws a rounded border around the rectangle with an optional title
// embedded in the top edge. The inner drawable area is r.Inset(1).
func Border(b *Buffer, r Rect, title string, borderFg, titleFg RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1

	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, edgeH, borderFg)
		b.Set(x, bottom, edgeH, borderFg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, edgeV, borderFg)
		b.Set(right, y, edgeV, borderFg)
	}
	b.Set(r.X, r.Y, cornerTL, borderFg)
	b.Set(right, r.Y, cornerTR, borderFg)
	b.Set(r.X, bottom, cornerBL, borderFg)
	b.Set(right, bottom, cornerBR, borderFg)

	if title != "" && r.W > 4 {
		label := " " + title + " "
		if max := r.W - 2; len([]rune(label)) > max {
			label = string([]rune(label)[:max])
		}
		b.SetString(r.X+1, r.Y, label, titleFg)
	}
}

// Paragraph draws lines into the rectangle with word wrap, clipping once the
// vertical space is exhausted.
func Paragraph(b *Buffer, r Rect, lines []string, fg RGB) {
	if r.Empty() {
		return
	}
	y := r.Y
	for _, line := range lines {
		for _, wrapped := range wrapLine(line, r.W) {
			if y >= r.Y+r.H {
				return
			}
			b.SetString(r.X, y, wrapped, fg)
			y++
		}
	}
}

// wrapLine breaks a line at word boundaries, falling back to a hard break for
// words wider than the available space.
func wrapLine(line string, width int) []string {
	if width <= 0 {
		return nil
	}
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	var out []string
	for len(runes) > width {
		cut := width
		for i := width; i > 0; i-- {
			if runes[i-1] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, strings.TrimRight(string(runes[:cut]), " "))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

// List draws items with a scroll window anchored at offset. The selected item
// is painted with the selection colors across the full row width.
func List(b *Buffer, r Rect, items []string, selected, offset int, fg, selFg, selBg RGB) {
	if r.Empty() {
		return
	}
	for row := 0; row < r.H; row++ {
		idx := offset + row
		if idx >= len(items) {
			break
		}
		item := items[idx]
		if runes := []rune(item); len(runes) > r.W {
			item = string(runes[:r.W])
		}
		y := r.Y + row
		if idx == selected {
			b.PaintBg(Rect{X: r.X, Y: y, W: r.W, H: 1}, selBg)
			b.SetString(r.X, y, item, selFg)
		} else {
			b.SetString(r.X, y, item, fg)
		}
	}
}

// Chart plots values as an XY line chart with the y axis locked to [0,1] and
// one column per sample. When there are more values than columns the oldest
// are dropped.
func Chart(b *Buffer, r Rect, values []float64, fg RGB) {
	if r.Empty() {
		return
	}
	if len(values) > r.W {
		values = values[len(values)-r.W:]
	}
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		// Row 0 of the rect is the top; value 1.0 lands there.
		row := int(float64(r.H-1) * (1 - v))
		b.Set(r.X+i, r.Y+row, '•', fg)
	}
}

// Gauge draws a horizontal proportion bar with a centered label over it.
func Gauge(b *Buffer, r Rect, ratio float64, label string, fill, labelFg RGB) {
	if r.Empty() {
		return
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(float64(r.W)*ratio + 0.5)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := 0; x < filled; x++ {
			b.Set(r.X+x, y, '█', fill)
		}
	}
	labelRunes := []rune(label)
	if len(labelRunes) > r.W {
		labelRunes = labelRunes[:r.W]
	}
	x := r.X + (r.W-len(labelRunes))/2
	y := r.Y + r.H/2
	for i, lr := range labelRunes {
		// Keep the bar visible beneath the label where they overlap.
		if x+i < r.X+filled {
			b.PaintBg(Rect{X: x + i, Y: y, W: 1, H: 1}, fill)
		}
		b.Set(x+i, y, lr, labelFg)
	}
}

// ProgressLabel formats the conventional "count/total" gauge label.
func ProgressLabel(count, total int) string {
	return fmt.Sprintf("%d/%d", count, total)
}
