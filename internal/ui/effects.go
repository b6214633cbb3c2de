package ui

import (
	"time"

	"fraglens/internal/fx"
	"fraglens/internal/surface"
)

const (
	shineDuration = 2500 * time.Millisecond
	shineInterval = 7500 * time.Millisecond
	shineWidth    = 50.0
	shineStrength = 0.5

	fadeInDuration = 500 * time.Millisecond
	fadeInHold     = 4 * time.Second
)

// animator owns the composed effect and the frame clock. It is advanced once
// per render with the wall-clock time since the previous render, zero on the
// first.
type animator struct {
	effect  fx.Effect
	regions *fx.Regions
	last    time.Time
	enabled bool
}

// newAnimator builds the standard choreography: a fade-in revealing the
// content panes, then an endless border shine with a long pause between
// sweeps. Filters resolve through regions, which the view re-assigns from
// each frame's layout before decorate runs.
func newAnimator(enabled bool) *animator {
	regions := &fx.Regions{}

	intro := fx.NewSequence(
		fx.NewFadeIn(fadeInDuration, fx.EaseOutQuad, regions.Inside()),
		fx.NewDelay(fadeInHold),
	)
	sweep := fx.NewRepeat(fx.NewSequence(
		fx.NewShine(shineDuration, fx.Linear, shineWidth, shineStrength, regions.Outside()),
		fx.NewDelay(shineInterval),
	))

	return &animator{
		effect:  fx.NewSequence(intro, sweep),
		regions: regions,
		enabled: enabled,
	}
}

// decorate applies the effect over a fully drawn frame.
func (a *animator) decorate(buf *surface.Buffer) {
	now := time.Now()
	var dt time.Duration
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now

	if !a.enabled || a.effect.Done() {
		return
	}
	a.effect.Apply(buf, dt)
}
