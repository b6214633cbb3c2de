package pipeline

import "fraglens/internal/fragment"

// Event is the interface for all progress messages flowing from the pipeline
// to the UI. The channel is bounded, so a slow UI applies backpressure to the
// scoring loop instead of letting it run ahead.
type Event interface {
	pipelineEvent() // marker method
}

// FragmentSelected is emitted just before a fragment is sent for scoring.
type FragmentSelected struct {
	Fragment fragment.Fragment
}

func (FragmentSelected) pipelineEvent() {}

// ScoreReceived is emitted when the scorer returns a value for the current
// fragment.
type ScoreReceived struct {
	Value float64
}

func (ScoreReceived) pipelineEvent() {}

// CountIncremented is emitted after a fragment's evaluation completes.
type CountIncremented struct{}

func (CountIncremented) pipelineEvent() {}

// BrowseReady is emitted once, after the final fragment, carrying every
// evaluation sorted by descending score.
type BrowseReady struct {
	Evaluations []Evaluation
}

func (BrowseReady) pipelineEvent() {}

// Failed is emitted when the run aborts; no BrowseReady follows it.
type Failed struct {
	Err error
}

func (Failed) pipelineEvent() {}
