// Package fx is a small time-driven interpreter for composable terminal
// animation effects. Effects are advanced once per render with the wall-clock
// time elapsed since the previous render and mutate per-cell foreground
// colors on a surface.Buffer. Spatial filters decide which cells an effect
// may touch; they are re-assigned from the current frame's layout rectangles
// immediately before the effect is applied, so effects follow whatever the
// view draws.
package fx

import (
	"time"

	"fraglens/internal/surface"
)

// Effect is a restartable timed visual transform.
type Effect interface {
	// Done reports whether the effect has consumed its full duration. A done
	// effect ignores Apply until Reset.
	Done() bool
	// Reset rewinds the effect to its initial state.
	Reset()
	// Apply advances the effect by dt and paints its current frame.
	Apply(buf *surface.Buffer, dt time.Duration)
}

// Filter selects the cells an effect may modify.
type Filter func(x, y int) bool

// Interpolation shapes a timer's raw progress in [0,1].
type Interpolation func(t float64) float64

// Linear leaves progress unshaped.
func Linear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the end of the duration.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// timer tracks elapsed time against a fixed duration.
type timer struct {
	duration time.Duration
	elapsed  time.Duration
	interp   Interpolation
}

func newTimer(d time.Duration, interp Interpolation) timer {
	if interp == nil {
		interp = Linear
	}
	return timer{duration: d, interp: interp}
}

func (t *timer) advance(dt time.Duration) {
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

func (t *timer) done() bool {
	return t.elapsed >= t.duration
}

func (t *timer) reset() {
	t.elapsed = 0
}

// alpha is the interpolated progress in [0,1].
func (t *timer) alpha() float64 {
	if t.duration <= 0 {
		return 1
	}
	return t.interp(float64(t.elapsed) / float64(t.duration))
}

// Regions collects the layout rectangles an effect run is scoped to. The view
// resets and re-assigns them every frame before applying effects, so filters
// built from a Regions always see the current layout.
type Regions struct {
	rects []surface.Rect
}

// Reset discards the previous frame's rectangles.
func (g *Regions) Reset() {
	g.rects = g.rects[:0]
}

// Assign adds one rectangle for the current frame.
func (g *Regions) Assign(r surface.Rect) {
	g.rects = append(g.rects, r)
}

// Inside matches cells within any assigned rectangle.
func (g *Regions) Inside() Filter {
	return func(x, y int) bool {
		for _, r := range g.rects {
			if r.Contains(x, y) {
				return true
			}
		}
		return false
	}
}

// Outside matches cells covered by no assigned rectangle.
func (g *Regions) Outside() Filter {
	inside := g.Inside()
	return func(x, y int) bool {
		return !inside(x, y)
	}
}
