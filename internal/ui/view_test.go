package ui

import (
	"errors"
	"testing"

	"fraglens/internal/fragment"
	"fraglens/internal/pipeline"
)

func testEvaluations(n int) []pipeline.Evaluation {
	f := &fragment.File{Path: "test.go", Lines: []string{"a"}, Display: []string{"a"}}
	evals := make([]pipeline.Evaluation, n)
	for i := range evals {
		evals[i] = pipeline.Evaluation{
			Fragment: fragment.Fragment{File: f, FirstLine: 0, LastLine: 0},
			Score:    1 - float64(i)*0.1,
		}
	}
	return evals
}

func TestApplyGatheringEvents(t *testing.T) {
	v := NewView(3)
	f := &fragment.File{Path: "test.go", Lines: []string{"a"}, Display: []string{"a"}}
	fr := fragment.Fragment{File: f, FirstLine: 0, LastLine: 0}

	if err := v.Apply(pipeline.FragmentSelected{Fragment: fr}); err != nil {
		t.Fatalf("fragment selected: %v", err)
	}
	if v.gather.current == nil || v.gather.current.File != f {
		t.Fatal("expected current fragment to be set")
	}

	if err := v.Apply(pipeline.ScoreReceived{Value: 0.7}); err != nil {
		t.Fatalf("score received: %v", err)
	}
	if len(v.gather.history) != 1 || v.gather.history[0] != 0.7 {
		t.Fatalf("unexpected history %v", v.gather.history)
	}

	if err := v.Apply(pipeline.CountIncremented{}); err != nil {
		t.Fatalf("count incremented: %v", err)
	}
	if v.gather.count != 1 {
		t.Fatalf("expected count 1, got %d", v.gather.count)
	}
}

func TestApplyCountSaturatesAtTotal(t *testing.T) {
	v := NewView(1)
	for i := 0; i < 3; i++ {
		if err := v.Apply(pipeline.CountIncremented{}); err != nil {
			t.Fatalf("count incremented: %v", err)
		}
	}
	if v.gather.count != 1 {
		t.Fatalf("expected count clamped to 1, got %d", v.gather.count)
	}
}

func TestApplyBrowseReadyTransitions(t *testing.T) {
	v := NewView(2)
	evals := testEvaluations(2)

	if err := v.Apply(pipeline.BrowseReady{Evaluations: evals}); err != nil {
		t.Fatalf("browse ready: %v", err)
	}
	if v.Phase() != PhaseBrowsing {
		t.Fatal("expected browsing phase")
	}
	if v.gather != nil {
		t.Fatal("expected gather state to be released")
	}
	sel := v.Selected()
	if sel == nil || sel.Score != evals[0].Score {
		t.Fatal("expected fresh selection on first evaluation")
	}
}

func TestApplyGatheringEventAfterTransitionFails(t *testing.T) {
	v := NewView(1)
	if err := v.Apply(pipeline.BrowseReady{Evaluations: testEvaluations(1)}); err != nil {
		t.Fatalf("browse ready: %v", err)
	}

	for _, evt := range []pipeline.Event{
		pipeline.ScoreReceived{Value: 0.5},
		pipeline.CountIncremented{},
		pipeline.BrowseReady{Evaluations: nil},
	} {
		err := v.Apply(evt)
		if !errors.Is(err, ErrPhase) {
			t.Fatalf("expected ErrPhase for %T, got %v", evt, err)
		}
	}
	if v.Phase() != PhaseBrowsing {
		t.Fatal("phase must survive rejected events")
	}
}

func TestApplyFailedReturnsError(t *testing.T) {
	v := NewView(1)
	boom := errors.New("boom")
	if err := v.Apply(pipeline.Failed{Err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
}

func TestChartCapacityEvictsOldest(t *testing.T) {
	v := NewView(10)
	for i := 0; i < 5; i++ {
		if err := v.Apply(pipeline.ScoreReceived{Value: float64(i) / 10}); err != nil {
			t.Fatalf("score received: %v", err)
		}
	}

	v.SetChartCapacity(3)
	if got := len(v.gather.history); got != 3 {
		t.Fatalf("expected 3 retained samples, got %d", got)
	}
	if v.gather.history[0] != 0.2 {
		t.Fatalf("expected oldest samples evicted, head is %v", v.gather.history[0])
	}

	// Further pushes stay bounded.
	v.gather.pushScore(0.9)
	if got := len(v.gather.history); got != 3 {
		t.Fatalf("expected history to stay at 3, got %d", got)
	}
	if v.gather.history[2] != 0.9 {
		t.Fatal("expected newest sample at tail")
	}
}

func TestNavigateNoOpWhileGathering(t *testing.T) {
	v := NewView(3)
	v.Navigate(navDown, 5)
	if v.Phase() != PhaseGathering {
		t.Fatal("phase changed unexpectedly")
	}
	if v.Selected() != nil {
		t.Fatal("expected no selection while gathering")
	}
}

func TestNavigateEmptyResults(t *testing.T) {
	v := NewView(0)
	if err := v.Apply(pipeline.BrowseReady{Evaluations: nil}); err != nil {
		t.Fatalf("browse ready: %v", err)
	}
	v.Navigate(navDown, 5)
	v.Navigate(navEnd, 5)
	if v.Selected() != nil {
		t.Fatal("expected nil selection on empty results")
	}
}

func TestNavigateClamping(t *testing.T) {
	v := NewView(5)
	if err := v.Apply(pipeline.BrowseReady{Evaluations: testEvaluations(5)}); err != nil {
		t.Fatalf("browse ready: %v", err)
	}
	b := v.browse

	v.Navigate(navUp, 2)
	if b.selected != 0 {
		t.Fatalf("up at top should stay, got %d", b.selected)
	}
	v.Navigate(navPageDown, 2)
	if b.selected != 2 {
		t.Fatalf("expected page down to 2, got %d", b.selected)
	}
	v.Navigate(navPageDown, 10)
	if b.selected != 4 {
		t.Fatalf("page down past end should clamp to 4, got %d", b.selected)
	}
	v.Navigate(navDown, 2)
	if b.selected != 4 {
		t.Fatalf("down at bottom should stay, got %d", b.selected)
	}
	v.Navigate(navHome, 2)
	if b.selected != 0 {
		t.Fatalf("home should select 0, got %d", b.selected)
	}
	v.Navigate(navEnd, 2)
	if b.selected != 4 {
		t.Fatalf("end should select last, got %d", b.selected)
	}
	v.Navigate(navPageUp, 10)
	if b.selected != 0 {
		t.Fatalf("page up past start should clamp to 0, got %d", b.selected)
	}
}

func TestScrollToKeepsSelectionVisible(t *testing.T) {
	b := &browseState{evals: testEvaluations(10)}

	b.selected = 7
	b.scrollTo(3)
	if b.offset != 5 {
		t.Fatalf("expected offset 5 for selection 7 height 3, got %d", b.offset)
	}

	b.selected = 2
	b.scrollTo(3)
	if b.offset != 2 {
		t.Fatalf("expected offset to follow selection up, got %d", b.offset)
	}

	b.selected = 0
	b.scrollTo(0) // degenerate height clamps to 1
	if b.offset != 0 {
		t.Fatalf("expected offset 0, got %d", b.offset)
	}
}
