// matein is a forced-checkmate solver. See: https://en.wikipedia.org/wiki/Chess_problem.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/mate"
	"github.com/seekerror/logw"
)

var (
	n        = flag.Int("n", 1, "Mate distance to search for, in full moves")
	position = flag.String("fen", "", "Position to solve (default to standard startpos)")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, noprogress, fullmoves, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	result := mate.Solve(ctx, b, *n)
	if !result.Found {
		fmt.Printf("no mate in %v\n", *n)
		return
	}
	fmt.Printf("mate in %v: %v\n", *n, board.FormatMoves(result.Moves, func(m board.Move) string { return m.String() }))
}
