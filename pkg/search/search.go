// Package search contains the alpha-beta game-tree search used to pick a move to play.
package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
)

// PV represents the principal variation found for some search depth.
type PV struct {
	Moves []board.Move
	Score eval.Score
	Depth int
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	pv := board.FormatMoves(p.Moves, func(m board.Move) string {
		return m.String()
	})
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, pv)
}

// BestMove returns the first move of the principal variation, or the null move if none was found.
func (p PV) BestMove() board.Move {
	if len(p.Moves) == 0 {
		return board.Move{}
	}
	return p.Moves[0]
}
