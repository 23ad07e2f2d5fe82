package search

import (
	"testing"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveListHintFirst(t *testing.T) {
	b := testBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	hint := board.Move{From: board.G1, To: board.F3, Piece: board.Knight, Type: board.Normal}

	moves := b.Position().LegalMoves(b.Turn(), board.All)
	ml := NewMoveList(moves, orderingKey(b, hint))

	first, ok := ml.Next()
	require.True(t, ok)
	assert.True(t, first.Equals(hint))
}

func TestMoveListCapturesBeforeQuiets(t *testing.T) {
	b := testBoard(t, "rnbqkbnr/ppp2ppp/8/3pp3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	moves := b.Position().LegalMoves(b.Turn(), board.All)

	ml := NewMoveList(moves, orderingKey(b, board.Move{}))
	first, ok := ml.Next()
	require.True(t, ok)
	assert.True(t, first.IsCapture(), "expected the capture to sort first, got %v", first)
}

func TestMoveListMVVLVAStableOnTies(t *testing.T) {
	// A position where two equal captures (same MVV-LVA value) are both available; the one
	// appearing earlier in the source list must come out first.
	b := testBoard(t, "4k3/8/2p5/1p6/3N4/8/8/4K3 w - - 0 1")
	moves := b.Position().LegalMoves(b.Turn(), board.All)

	var captures []board.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	require.Len(t, captures, 2)

	ml := NewMoveList(moves, orderingKey(b, board.Move{}))
	first, ok := ml.Next()
	require.True(t, ok)
	assert.True(t, first.Equals(captures[0]))
}

func TestMoveListHintNeverRepeated(t *testing.T) {
	b := testBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	hint := board.Move{From: board.G1, To: board.F3, Piece: board.Knight, Type: board.Normal}

	moves := b.Position().LegalMoves(b.Turn(), board.All)
	ml := NewMoveList(moves, orderingKey(b, hint))

	seen := 0
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		if m.Equals(hint) {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func testBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	require.NoError(t, err)

	zt := board.NewZobristTable(0)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}
