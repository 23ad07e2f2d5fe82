package eval_test

import (
	"context"
	"testing"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominalValue(t *testing.T) {
	tests := []struct {
		piece board.Piece
		want  eval.Score
	}{
		{board.Pawn, 100},
		{board.Knight, 320},
		{board.Bishop, 330},
		{board.Rook, 500},
		{board.Queen, 900},
		{board.King, 20000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eval.NominalValue(tt.piece))
	}
}

func TestMaterialStartpos(t *testing.T) {
	b := newBoard(t, fen.Initial)
	assert.Equal(t, eval.ZeroScore, eval.Material{}.Evaluate(context.Background(), b))
}

func TestMaterialAsymmetric(t *testing.T) {
	// White is down a knight.
	b := newBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	assert.Equal(t, -eval.NominalValue(board.Knight), eval.Material{}.Evaluate(context.Background(), b))
}

// TestEvaluatorSymmetry exercises testable property 4: evaluating a position and its
// color-mirrored counterpart must agree up to the sign implied by the side to move.
func TestEvaluatorSymmetry(t *testing.T) {
	white := newBoard(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	black := newBoard(t, "rnbqkb1r/pppp1ppp/5n2/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 2 3")

	assert.Equal(t, eval.Material{}.Evaluate(context.Background(), white), eval.Material{}.Evaluate(context.Background(), black))
	assert.Equal(t, eval.Standard{}.Evaluate(context.Background(), white), eval.Standard{}.Evaluate(context.Background(), black))
}

func TestStandardCheckmateAndStalemate(t *testing.T) {
	// Fool's mate: white to move is checkmated.
	mated := newBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, -eval.Mate, eval.Standard{}.Evaluate(context.Background(), mated))

	// A standard stalemate position: black to move has no legal moves and is not in check.
	stalemate := newBoard(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.Equal(t, eval.ZeroScore, eval.Standard{}.Evaluate(context.Background(), stalemate))
}

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}
