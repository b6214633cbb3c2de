package pipeline

import (
	"context"
	"fmt"
	"sort"

	"fraglens/internal/fragment"
)

// Scorer maps fragment text to a relevance score in [0,1].
type Scorer interface {
	Score(ctx context.Context, fragmentText string) (float64, error)
}

// Evaluation pairs a fragment with its score.
type Evaluation struct {
	Fragment fragment.Fragment
	Score    float64
}

// Run evaluates fragments strictly in order, one scoring call in flight at a
// time, emitting progress events as it goes. After the last fragment it emits
// BrowseReady with the evaluations stable-sorted by descending score. A
// scoring failure aborts immediately: the error is returned and no partial
// result set is delivered.
func Run(ctx context.Context, fragments []fragment.Fragment, scorer Scorer, out chan<- Event) error {
	evals := make([]Evaluation, 0, len(fragments))
	for _, fr := range fragments {
		if err := send(ctx, out, FragmentSelected{Fragment: fr}); err != nil {
			return err
		}
		value, err := scorer.Score(ctx, fr.Text())
		if err != nil {
			return fmt.Errorf("fragment %s: %w", fr.Location(), err)
		}
		if err := send(ctx, out, ScoreReceived{Value: value}); err != nil {
			return err
		}
		if err := send(ctx, out, CountIncremented{}); err != nil {
			return err
		}
		evals = append(evals, Evaluation{Fragment: fr, Score: value})
	}

	// Stable: equal scores keep windower order.
	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Score > evals[j].Score
	})
	return send(ctx, out, BrowseReady{Evaluations: evals})
}

func send(ctx context.Context, out chan<- Event, evt Event) error {
	select {
	case out <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
