package ui

import (
	"errors"
	"fmt"

	"fraglens/internal/fragment"
	"fraglens/internal/pipeline"
)

// ErrPhase reports a pipeline event arriving while the view is in the wrong
// phase. It means the orchestrator and the view have desynchronized, so it is
// fatal rather than dropped.
var ErrPhase = errors.New("event outside its phase")

// Phase is the UI mode: gathering scores or browsing results.
type Phase int

const (
	PhaseGathering Phase = iota
	PhaseBrowsing
)

// gatherState is the live-progress model. It exists only while scoring runs.
type gatherState struct {
	history  []float64 // bounded recent scores, oldest first
	capacity int
	current  *fragment.Fragment
	count    int
	total    int
}

// browseState is the result-browser model, built once from the sorted
// evaluations.
type browseState struct {
	evals    []pipeline.Evaluation
	selected int
	offset   int // first visible list row
}

// View owns the phase tag and exactly one live phase state. The transition
// from gathering to browsing is one-way.
type View struct {
	phase  Phase
	gather *gatherState
	browse *browseState
}

const defaultChartCapacity = 80

// NewView starts in the gathering phase expecting total fragments.
func NewView(total int) *View {
	return &View{
		phase:  PhaseGathering,
		gather: &gatherState{total: total, capacity: defaultChartCapacity},
	}
}

// Phase returns the current phase tag.
func (v *View) Phase() Phase {
	return v.phase
}

// Apply folds one pipeline event into the view. Gathering events in the
// browsing phase (or a second BrowseReady) violate the protocol.
func (v *View) Apply(evt pipeline.Event) error {
	switch evt := evt.(type) {
	case pipeline.FragmentSelected:
		if v.phase != PhaseGathering {
			return fmt.Errorf("%w: fragment selected while browsing", ErrPhase)
		}
		fr := evt.Fragment
		v.gather.current = &fr
	case pipeline.ScoreReceived:
		if v.phase != PhaseGathering {
			return fmt.Errorf("%w: score received while browsing", ErrPhase)
		}
		v.gather.pushScore(evt.Value)
	case pipeline.CountIncremented:
		if v.phase != PhaseGathering {
			return fmt.Errorf("%w: count incremented while browsing", ErrPhase)
		}
		if v.gather.count < v.gather.total {
			v.gather.count++
		}
	case pipeline.BrowseReady:
		if v.phase != PhaseGathering {
			return fmt.Errorf("%w: duplicate browse transition", ErrPhase)
		}
		v.phase = PhaseBrowsing
		v.gather = nil
		v.browse = &browseState{evals: evt.Evaluations}
	case pipeline.Failed:
		return evt.Err
	default:
		return fmt.Errorf("%w: unknown event %T", ErrPhase, evt)
	}
	return nil
}

func (g *gatherState) pushScore(value float64) {
	g.history = append(g.history, value)
	if over := len(g.history) - g.capacity; over > 0 {
		g.history = g.history[over:]
	}
}

// SetChartCapacity bounds the score history to the chart's drawable width,
// evicting the oldest samples immediately.
func (v *View) SetChartCapacity(columns int) {
	if v.gather == nil {
		return
	}
	if columns < 1 {
		columns = 1
	}
	v.gather.capacity = columns
	if over := len(v.gather.history) - columns; over > 0 {
		v.gather.history = v.gather.history[over:]
	}
}

// nav is a browsing-phase cursor command.
type nav int

const (
	navUp nav = iota
	navDown
	navPageUp
	navPageDown
	navHome
	navEnd
)

// Navigate moves the browsing selection. While gathering, or with an empty
// result list, it is a no-op. The selection always stays in range.
func (v *View) Navigate(cmd nav, pageSize int) {
	if v.phase != PhaseBrowsing || len(v.browse.evals) == 0 {
		return
	}
	if pageSize < 1 {
		pageSize = 1
	}
	b := v.browse
	last := len(b.evals) - 1
	switch cmd {
	case navUp:
		if b.selected > 0 {
			b.selected--
		}
	case navDown:
		if b.selected < last {
			b.selected++
		}
	case navPageUp:
		b.selected -= pageSize
		if b.selected < 0 {
			b.selected = 0
		}
	case navPageDown:
		b.selected += pageSize
		if b.selected > last {
			b.selected = last
		}
	case navHome:
		b.selected = 0
	case navEnd:
		b.selected = last
	}
}

// Selected returns the evaluation under the cursor, or nil outside the
// browsing phase or with no results.
func (v *View) Selected() *pipeline.Evaluation {
	if v.phase != PhaseBrowsing || len(v.browse.evals) == 0 {
		return nil
	}
	return &v.browse.evals[v.browse.selected]
}

// scrollTo keeps the selection inside a window of the given height.
func (b *browseState) scrollTo(height int) {
	if height < 1 {
		height = 1
	}
	if b.selected < b.offset {
		b.offset = b.selected
	}
	if b.selected >= b.offset+height {
		b.offset = b.selected - height + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}
