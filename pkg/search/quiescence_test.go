package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search"
	"github.com/stretchr/testify/assert"
)

// TestQuiescenceFindsObviousCapture exercises scenario S3: a free queen capture must be
// reflected in the search score even at depth zero, since quiescence extends the horizon
// over noisy (capturing) moves.
func TestQuiescenceFindsObviousCapture(t *testing.T) {
	ctx := context.Background()
	// White to move; the black queen on d8 hangs to the rook on d1.
	b := newBoard(t, "3q3k/8/8/8/8/8/8/3RK3 w - - 0 1")

	ab := search.AlphaBeta{Eval: eval.Material{}, TT: search.NoTranspositionTable{}}
	_, score := ab.Search(ctx, b, 0)

	assert.Equal(t, eval.Score(500), score)
}

// TestQuiescenceAvoidsHorizonBlindness ensures a depth-zero search does not stop short and
// miss a recapture: trading queens should net out near zero, not look like a free queen.
func TestQuiescenceAvoidsHorizonBlindness(t *testing.T) {
	ctx := context.Background()
	// White queen on d1 can take the black queen on d8, but the black king on e8 recaptures.
	b := newBoard(t, "3qk3/8/8/8/8/8/8/3QK3 w - - 0 1")

	ab := search.AlphaBeta{Eval: eval.Material{}, TT: search.NoTranspositionTable{}}
	_, score := ab.Search(ctx, b, 0)

	assert.Less(t, score, eval.Score(100))
}
