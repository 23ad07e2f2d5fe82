package mate_test

import (
	"context"
	"testing"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/mate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMateInOne(t *testing.T) {
	b := newBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")

	result := mate.Solve(context.Background(), b, 1)
	require.True(t, result.Found)
	require.Len(t, result.Moves, 1)
}

func TestSolveMateInTwo(t *testing.T) {
	b := newBoard(t, "k7/7R/7R/8/8/8/8/7K w - - 0 1")

	result := mate.Solve(context.Background(), b, 2)
	require.True(t, result.Found)
	require.Len(t, result.Moves, 3)
}

func TestSolveNoMateExists(t *testing.T) {
	b := newBoard(t, fen.Initial)

	result := mate.Solve(context.Background(), b, 1)
	assert.False(t, result.Found)
	assert.Nil(t, result.Moves)
}

func newBoard(t *testing.T, position string) *board.Board {
	t.Helper()

	zt := board.NewZobristTable(0)
	b, err := fen.NewBoard(zt, position)
	require.NoError(t, err)
	return b
}
