package pipeline

import (
	"context"
	"errors"
	"testing"

	"fraglens/internal/fragment"
)

type stubScorer struct {
	values []float64
	errAt  int // 1-based call index that fails; 0 disables
	calls  int
}

func (s *stubScorer) Score(ctx context.Context, text string) (float64, error) {
	s.calls++
	if s.errAt > 0 && s.calls == s.errAt {
		return 0, errors.New("provider unavailable")
	}
	return s.values[s.calls-1], nil
}

func testFragments(n int) []fragment.Fragment {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	f := &fragment.File{Path: "a.go", Lines: lines, Display: lines}
	return f.Window(1, 1)
}

func collect(t *testing.T, fragments []fragment.Fragment, scorer Scorer) ([]Event, error) {
	t.Helper()
	out := make(chan Event, 4*len(fragments)+1)
	err := Run(context.Background(), fragments, scorer, out)
	close(out)
	var events []Event
	for evt := range out {
		events = append(events, evt)
	}
	return events, err
}

func TestRun_EmitsEventsInOrderAndSorts(t *testing.T) {
	frags := testFragments(3)
	scorer := &stubScorer{values: []float64{0.9, 0.1, 0.5}}

	events, err := collect(t, frags, scorer)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Per fragment: selected, score, count. Then one BrowseReady.
	if len(events) != 10 {
		t.Fatalf("event count = %d, want 10", len(events))
	}
	for i := 0; i < 3; i++ {
		sel, ok := events[i*3].(FragmentSelected)
		if !ok {
			t.Fatalf("event %d = %T, want FragmentSelected", i*3, events[i*3])
		}
		if sel.Fragment.FirstLine != frags[i].FirstLine {
			t.Fatalf("selected fragment %d = line %d, want %d", i, sel.Fragment.FirstLine, frags[i].FirstLine)
		}
		score, ok := events[i*3+1].(ScoreReceived)
		if !ok {
			t.Fatalf("event %d = %T, want ScoreReceived", i*3+1, events[i*3+1])
		}
		if score.Value != scorer.values[i] {
			t.Fatalf("score %d = %v, want %v", i, score.Value, scorer.values[i])
		}
		if _, ok := events[i*3+2].(CountIncremented); !ok {
			t.Fatalf("event %d = %T, want CountIncremented", i*3+2, events[i*3+2])
		}
	}

	ready, ok := events[9].(BrowseReady)
	if !ok {
		t.Fatalf("final event = %T, want BrowseReady", events[9])
	}
	wantOrder := []float64{0.9, 0.5, 0.1}
	wantLines := []int{0, 2, 1}
	for i, eval := range ready.Evaluations {
		if eval.Score != wantOrder[i] {
			t.Fatalf("sorted[%d].Score = %v, want %v", i, eval.Score, wantOrder[i])
		}
		if eval.Fragment.FirstLine != wantLines[i] {
			t.Fatalf("sorted[%d] is fragment at line %d, want %d", i, eval.Fragment.FirstLine, wantLines[i])
		}
	}
}

func TestRun_SortIsStableOnTies(t *testing.T) {
	frags := testFragments(4)
	scorer := &stubScorer{values: []float64{0.5, 0.7, 0.5, 0.5}}

	events, err := collect(t, frags, scorer)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	ready := events[len(events)-1].(BrowseReady)
	wantLines := []int{1, 0, 2, 3}
	for i, eval := range ready.Evaluations {
		if eval.Fragment.FirstLine != wantLines[i] {
			t.Fatalf("sorted[%d] is fragment at line %d, want %d", i, eval.Fragment.FirstLine, wantLines[i])
		}
	}
}

func TestRun_AbortsOnScoringFailure(t *testing.T) {
	frags := testFragments(3)
	scorer := &stubScorer{values: []float64{0.9, 0, 0.5}, errAt: 2}

	events, err := collect(t, frags, scorer)
	if err == nil {
		t.Fatalf("Run returned nil error, want failure")
	}
	if scorer.calls != 2 {
		t.Fatalf("scorer calls = %d, want 2 (no scoring after failure)", scorer.calls)
	}
	for _, evt := range events {
		if _, ok := evt.(BrowseReady); ok {
			t.Fatalf("BrowseReady emitted after scoring failure")
		}
	}
}

func TestRun_CancelledContextStopsSends(t *testing.T) {
	frags := testFragments(2)
	scorer := &stubScorer{values: []float64{0.1, 0.2}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan Event) // unbuffered, nobody reading
	if err := Run(ctx, frags, scorer, out); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}
