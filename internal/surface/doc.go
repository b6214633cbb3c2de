// Package surface is a cell-addressed drawing layer for the fraglens TUI.
//
// # Overview
//
// Widgets draw runes and colors into a Buffer, a width×height grid of
// cells. The buffer is rebuilt from scratch every frame, post-processed by
// animation effects that adjust per-cell foreground colors, and finally
// serialized to a styled string via lipgloss for Bubble Tea to print.
// Keeping an explicit cell grid is what makes per-cell color effects
// possible; string-assembled views have no cells to recolor.
//
// # Package Structure
//
//   - color.go:   RGB color type, hex parsing, linear interpolation
//   - layout.go:  Rect and constraint-based splitting (fixed and
//     weighted-fill rows or columns)
//   - buffer.go:  The cell grid, clipped writes, styled serialization
//   - widgets.go: Bordered panes, word-wrapped paragraphs, selectable
//     lists, a line chart, and a progress gauge
//
// # Layout
//
// SplitV and SplitH divide a Rect using constraints: Fixed rows take their
// size first (clipped to what remains), Fill rows share the remainder by
// weight, and the first fill absorbs rounding so the split always covers
// the whole area.
//
// # Widgets
//
// All widgets take the Buffer and the Rect they may draw into; nothing is
// ever written outside the buffer bounds. The chart pins its y axis to
// [0, 1] and drops the oldest points once the series exceeds the available
// width. The gauge centers a label over the fill, preserving the fill
// color beneath it.
package surface
