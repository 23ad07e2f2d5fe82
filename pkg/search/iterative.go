package search

import (
	"context"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search/searchctl"
	"github.com/seekerror/logw"
)

// MaxDepth bounds the iterative-deepening loop; no practical position requires more plies
// within the time budgets this engine computes, and it provides a hard ceiling regardless.
const MaxDepth = 15

// IterativeDeepen runs a synchronous iterative-deepening search from b's current position,
// one depth at a time, until dl's budget is exhausted, MaxDepth is reached, or a proven mate
// is found. Each iteration re-searches the root's move list itself, trying the previous
// iteration's best move first; the root does not consult the transposition table for
// cutoffs, only the recursive children do. Results from an iteration that was aborted
// partway through by the deadline are discarded, since they reflect an incomplete scan of
// the root moves, not a genuine minimax value.
func IterativeDeepen(ctx context.Context, ab AlphaBeta, dl *searchctl.Deadline, b *board.Board) PV {
	start := dl.Elapsed()
	turn := b.Turn()

	root := b.Position().LegalMoves(turn, board.All)
	if len(root) == 0 {
		return PV{}
	}
	if len(root) == 1 {
		return PV{Moves: []board.Move{root[0]}, Depth: 1, Nodes: 1}
	}

	var pv PV
	var previousBest board.Move

	for depth := 1; depth <= MaxDepth; depth++ {
		if dl.TimeUp() {
			break
		}

		ordered := rootFirst(root, previousBest)

		var iterationNodes uint64
		iterationScore := eval.NegInf
		var iterationBest board.Move
		aborted := false

		for _, m := range ordered {
			b.PushMove(m)
			n, score := ab.search(ctx, dl, b, depth-1, 1, eval.NegInf, eval.Inf)
			b.PopMove()
			iterationNodes += n

			if dl.TimeUp() {
				aborted = true
				break
			}

			score = score.Negate()
			if score > iterationScore {
				iterationScore = score
				iterationBest = m
			}
		}

		pv.Nodes += iterationNodes
		if aborted {
			logw.Debugf(ctx, "search: depth %v aborted after %v nodes, discarding", depth, iterationNodes)
			break
		}

		pv.Depth = depth
		pv.Score = iterationScore
		pv.Moves = []board.Move{iterationBest}
		pv.Time = dl.Elapsed() - start
		previousBest = iterationBest

		if iterationScore.IsMate() {
			break
		}
	}

	if len(pv.Moves) == 0 {
		// The deadline expired before depth 1 even finished scanning the root moves: there is
		// no genuine minimax value to report, but a legal move must still be emitted (§8
		// property 2), so fall back to the first root move considered.
		pv.Moves = []board.Move{root[0]}
		pv.Time = dl.Elapsed() - start
	}

	return pv
}

// rootFirst returns moves reordered so that hint (the previous iteration's best move, if
// any) is searched first; the remaining moves keep their relative order.
func rootFirst(moves []board.Move, hint board.Move) []board.Move {
	if hint == (board.Move{}) {
		return moves
	}

	ordered := make([]board.Move, 0, len(moves))
	ordered = append(ordered, hint)
	for _, m := range moves {
		if !m.Equals(hint) {
			ordered = append(ordered, m)
		}
	}
	return ordered
}
