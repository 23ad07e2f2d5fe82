package search

import (
	"context"
	"testing"
	"time"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFirstOrdersHintFirst(t *testing.T) {
	a := board.Move{From: board.A2, To: board.A3}
	hint := board.Move{From: board.E2, To: board.E4}
	c := board.Move{From: board.G1, To: board.F3}

	ordered := rootFirst([]board.Move{a, hint, c}, hint)
	require.Len(t, ordered, 3)
	assert.True(t, ordered[0].Equals(hint))
}

func TestRootFirstNoHintKeepsOrder(t *testing.T) {
	a := board.Move{From: board.A2, To: board.A3}
	b := board.Move{From: board.E2, To: board.E4}

	ordered := rootFirst([]board.Move{a, b}, board.Move{})
	require.Len(t, ordered, 2)
	assert.True(t, ordered[0].Equals(a))
	assert.True(t, ordered[1].Equals(b))
}

// TestIterativeDeepenFindsMateInOne exercises scenario S1: given a mate-in-one position and
// an ample time budget, the search stops as soon as the mate is proven rather than spending
// the whole budget on deeper, pointless iterations.
func TestIterativeDeepenFindsMateInOne(t *testing.T) {
	b := newIterBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	ab := AlphaBeta{Eval: eval.Material{}, TT: NoTranspositionTable{}}
	dl := searchctl.NewDeadline(time.Hour)

	pv := IterativeDeepen(context.Background(), ab, dl, b)
	require.NotEmpty(t, pv.Moves)
	assert.True(t, pv.Score.IsMate())
	assert.Less(t, pv.Depth, MaxDepth)
}

// TestIterativeDeepenObeysDeadline exercises testable property 8: wall-clock time spent
// must not wildly exceed the budget, even against a position with a large branching factor.
func TestIterativeDeepenObeysDeadline(t *testing.T) {
	b := newIterBoard(t, fen.Initial)
	ab := AlphaBeta{Eval: eval.Material{}, TT: NoTranspositionTable{}}
	budget := 50 * time.Millisecond
	dl := searchctl.NewDeadline(budget)

	start := time.Now()
	pv := IterativeDeepen(context.Background(), ab, dl, b)
	elapsed := time.Since(start)

	require.NotEmpty(t, pv.Moves)
	assert.Less(t, elapsed, budget+500*time.Millisecond)
}

func TestIterativeDeepenNoLegalMoves(t *testing.T) {
	b := newIterBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	ab := AlphaBeta{Eval: eval.Material{}, TT: NoTranspositionTable{}}
	dl := searchctl.NewDeadline(time.Second)

	pv := IterativeDeepen(context.Background(), ab, dl, b)
	assert.Empty(t, pv.Moves)
}

func newIterBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	zt := board.NewZobristTable(0)
	b, err := fen.NewBoard(zt, position)
	require.NoError(t, err)
	return b
}
