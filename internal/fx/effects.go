package fx

import (
	"time"

	"fraglens/internal/surface"
)

// Shine sweeps a diagonal band of lightened cells across the filtered region,
// travelling from the bottom-right corner to the top-left over its duration.
type Shine struct {
	t        timer
	filter   Filter
	width    float64 // band width in diagonal cells
	strength float64 // added lightness at the band's center, 0..1
}

// NewShine builds a diagonal highlight sweep.
func NewShine(d time.Duration, interp Interpolation, width, strength float64, filter Filter) *Shine {
	return &Shine{t: newTimer(d, interp), filter: filter, width: width, strength: strength}
}

func (s *Shine) Done() bool { return s.t.done() }
func (s *Shine) Reset()     { s.t.reset() }

func (s *Shine) Apply(buf *surface.Buffer, dt time.Duration) {
	if s.Done() {
		return
	}
	s.t.advance(dt)
	progress := 1 - s.t.alpha()

	w, h := buf.Width(), buf.Height()
	diag := float64(w + h)
	rangeMin := -s.width
	rangeMax := diag + s.width
	bandRel := s.width / (rangeMax - rangeMin)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.filter != nil && !s.filter(x, y) {
				continue
			}
			posRel := (float64(x+y) - rangeMin) / (rangeMax - rangeMin)
			diff := progress - posRel
			if diff < 0 {
				diff = -diff
			}
			if diff >= bandRel {
				continue
			}
			fg, ok := buf.Fg(x, y)
			if !ok {
				continue
			}
			hue, sat, light := rgbToHSL(fg)
			light += s.strength * (bandRel - diff) / bandRel
			if light > 1 {
				light = 1
			}
			buf.SetFg(x, y, hslToRGB(hue, sat, light))
		}
	}
}

// FadeIn lerps filtered cells' foregrounds up from the buffer background,
// revealing freshly drawn content over its duration.
type FadeIn struct {
	t      timer
	filter Filter
}

// NewFadeIn builds a fade from the background color.
func NewFadeIn(d time.Duration, interp Interpolation, filter Filter) *FadeIn {
	return &FadeIn{t: newTimer(d, interp), filter: filter}
}

func (f *FadeIn) Done() bool { return f.t.done() }
func (f *FadeIn) Reset()     { f.t.reset() }

func (f *FadeIn) Apply(buf *surface.Buffer, dt time.Duration) {
	if f.Done() {
		return
	}
	f.t.advance(dt)
	alpha := f.t.alpha()
	bg := buf.Background()

	w, h := buf.Width(), buf.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.filter != nil && !f.filter(x, y) {
				continue
			}
			fg, ok := buf.Fg(x, y)
			if !ok {
				continue
			}
			buf.SetFg(x, y, surface.Lerp(bg, fg, alpha))
		}
	}
}

// Delay is a no-op effect that only consumes time, used to hold pauses
// between repetitions.
type Delay struct {
	t timer
}

// NewDelay builds a pause of the given duration.
func NewDelay(d time.Duration) *Delay {
	return &Delay{t: newTimer(d, Linear)}
}

func (d *Delay) Done() bool { return d.t.done() }
func (d *Delay) Reset()     { d.t.reset() }

func (d *Delay) Apply(buf *surface.Buffer, dt time.Duration) {
	d.t.advance(dt)
}

// Sequence plays its children in order; each child's finish hands the frame
// clock to the next.
type Sequence struct {
	children []Effect
}

// NewSequence composes effects back to back.
func NewSequence(children ...Effect) *Sequence {
	return &Sequence{children: children}
}

func (s *Sequence) Done() bool {
	for _, c := range s.children {
		if !c.Done() {
			return false
		}
	}
	return true
}

func (s *Sequence) Reset() {
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *Sequence) Apply(buf *surface.Buffer, dt time.Duration) {
	for _, c := range s.children {
		if c.Done() {
			continue
		}
		c.Apply(buf, dt)
		return
	}
}

// Repeat replays a finished child from the start indefinitely.
type Repeat struct {
	child Effect
}

// NewRepeat loops an effect forever.
func NewRepeat(child Effect) *Repeat {
	return &Repeat{child: child}
}

func (r *Repeat) Done() bool { return false }
func (r *Repeat) Reset()     { r.child.Reset() }

func (r *Repeat) Apply(buf *surface.Buffer, dt time.Duration) {
	if r.child.Done() {
		r.child.Reset()
	}
	r.child.Apply(buf, dt)
}
