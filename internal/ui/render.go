package ui

import (
	"fmt"

	"fraglens/internal/fx"
	"fraglens/internal/surface"
)

const (
	chartPaneHeight = 8
	gaugePaneHeight = 3

	// pageChrome is the vertical space the browsing list loses to borders;
	// page-sized jumps move by the viewport height minus this allowance.
	pageChrome = 2
)

// Render draws the current phase into the buffer and assigns this frame's
// content rectangles to regions so the effect filters track the live layout.
func (v *View) Render(buf *surface.Buffer, theme Theme, regions *fx.Regions) {
	regions.Reset()
	switch v.phase {
	case PhaseGathering:
		v.renderGather(buf, theme, regions)
	case PhaseBrowsing:
		v.renderBrowse(buf, theme, regions)
	}
}

func (v *View) renderGather(buf *surface.Buffer, theme Theme, regions *fx.Regions) {
	panes := surface.SplitV(buf.Area(),
		surface.Fill(1),
		surface.Fixed(chartPaneHeight),
		surface.Fixed(gaugePaneHeight),
	)
	codePane, chartPane, gaugePane := panes[0], panes[1], panes[2]
	for _, pane := range panes {
		regions.Assign(pane.Inset(1))
	}

	g := v.gather
	title := "Current code fragment"
	var lines []string
	if g.current != nil {
		title = g.current.Location()
		lines = g.current.Styled()
	}
	surface.Border(buf, codePane, title, theme.Border, theme.Title)
	surface.Paragraph(buf, codePane.Inset(1), lines, theme.Text)

	surface.Border(buf, chartPane, "Value history", theme.Border, theme.Title)
	surface.Chart(buf, chartPane.Inset(1), g.history, theme.Highlight)

	surface.Border(buf, gaugePane, "Progress", theme.Border, theme.Title)
	ratio := 0.0
	if g.total > 0 {
		ratio = float64(g.count) / float64(g.total)
	}
	label := surface.ProgressLabel(g.count, g.total)
	surface.Gauge(buf, gaugePane.Inset(1), ratio, label, theme.Gauge, theme.Text)
}

func (v *View) renderBrowse(buf *surface.Buffer, theme Theme, regions *fx.Regions) {
	b := v.browse

	items := make([]string, len(b.evals))
	maxLen := 0
	for i, eval := range b.evals {
		items[i] = fmt.Sprintf("%s %.3f", eval.Fragment.Location(), eval.Score)
		if n := len([]rune(items[i])); n > maxLen {
			maxLen = n
		}
	}
	listWidth := maxLen + 2
	if min := 12; listWidth < min {
		listWidth = min
	}
	if max := buf.Width() / 2; listWidth > max {
		listWidth = max
	}

	panes := surface.SplitH(buf.Area(), surface.Fill(1), surface.Fixed(listWidth))
	codePane, listPane := panes[0], panes[1]
	for _, pane := range panes {
		regions.Assign(pane.Inset(1))
	}

	title := "Fragment"
	var lines []string
	if eval := v.Selected(); eval != nil {
		title = eval.Fragment.Location()
		lines = eval.Fragment.Styled()
	}
	surface.Border(buf, codePane, title, theme.Border, theme.Title)
	surface.Paragraph(buf, codePane.Inset(1), lines, theme.Text)

	surface.Border(buf, listPane, "Fragments", theme.Border, theme.Title)
	inner := listPane.Inset(1)
	b.scrollTo(inner.H)
	surface.List(buf, inner, items, b.selected, b.offset, theme.Text, theme.Background, theme.Highlight)
}
