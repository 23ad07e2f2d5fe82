package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlphaBetaSoundness exercises testable property 5: AlphaBeta's score at depth d must
// equal pure Minimax's score at the same depth over the same evaluator. Quiescence is
// disabled for this comparison: Minimax returns the static evaluation at a depth-0 leaf,
// while AlphaBeta's quiescence search would otherwise look past that leaf along capturing
// lines, which is a real and desirable difference in play but not one Minimax can be
// expected to reproduce.
func TestAlphaBetaSoundness(t *testing.T) {
	ctx := context.Background()
	e := eval.Material{}
	ab := search.AlphaBeta{Eval: e, TT: search.NoTranspositionTable{}, NoQuiescence: true}
	mm := search.Minimax{Eval: e}

	positions := []struct {
		fen   string
		depth int
	}{
		{fen.Initial, 2},
		{fen.Initial, 3},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"k7/7R/6R1/8/8/8/8/7K w - - 0 1", 2},
		{"k7/7R/7R/8/8/8/8/7K w - - 0 1", 3},
	}

	for _, tt := range positions {
		b := newBoard(t, tt.fen)
		_, want := mm.Search(ctx, b, tt.depth)
		_, got := ab.Search(ctx, b, tt.depth)
		assert.Equalf(t, want, got, "fen=%v depth=%v", tt.fen, tt.depth)
	}
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	ab := search.AlphaBeta{Eval: eval.Material{}, TT: search.NoTranspositionTable{}}

	_, score := ab.Search(ctx, b, 2)
	assert.True(t, score.IsMate())
	assert.Greater(t, score, eval.ZeroScore) // White delivers the mate.
}

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}
