// Package mate implements a dedicated forced-checkmate solver, independent of the engine's
// positional search.
package mate

import (
	"context"

	"github.com/corvidchess/vane/pkg/board"
)

// infinity stands in for a score no real line can reach; it only needs to be larger in
// magnitude than any alpha-beta window this search ever uses.
const infinity = 1 << 30

// Result reports whether b's side to move has a forced checkmate within n full moves.
type Result struct {
	Found bool
	Moves []board.Move // the winning line, if Found
}

// Solve searches for a forced checkmate delivered by the side to move in b within n full
// moves (2n plies, n attacker moves interleaved with n defender replies). It uses plain
// minimax with alpha-beta pruning and no positional evaluator: the only meaningful terminal
// values are "the defender was just checkmated" and "the search ran out of line without
// that happening", since the goal is a yes/no proof rather than a graded evaluation. Unlike
// the negamax playing search, the attacker's perspective is fixed for the whole tree, since
// the point is specifically whether the attacker -- not whichever side is on move -- can
// force mate.
func Solve(ctx context.Context, b *board.Board, n int) Result {
	attacker := b.Turn()

	var pv []board.Move
	score := search(ctx, b, 2*n, attacker, &pv, -infinity, infinity)
	if score <= 0 {
		return Result{}
	}
	return Result{Found: true, Moves: pv}
}

func search(ctx context.Context, b *board.Board, depth int, attacker board.Color, pv *[]board.Move, alpha, beta int) int {
	if ctx.Err() != nil {
		return -infinity
	}

	if b.Result().Outcome == board.Draw {
		return -infinity // a draw is never a forced mate
	}

	turn := b.Turn()
	moves := b.Position().LegalMoves(turn, board.All)

	if depth == 0 || len(moves) == 0 {
		if len(moves) == 0 && turn != attacker && b.Position().IsChecked(turn) {
			return infinity
		}
		return -infinity
	}

	if turn == attacker {
		best := -infinity
		for _, m := range moves {
			b.PushMove(m)
			var line []board.Move
			score := search(ctx, b, depth-1, attacker, &line, alpha, beta)
			b.PopMove()

			if score >= best {
				best = score
				*pv = append([]board.Move{m}, line...)
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	worst := infinity
	for _, m := range moves {
		b.PushMove(m)
		var line []board.Move
		score := search(ctx, b, depth-1, attacker, &line, alpha, beta)
		b.PopMove()

		if score <= worst {
			worst = score
			*pv = append([]board.Move{m}, line...)
		}
		if worst < beta {
			beta = worst
		}
		if beta <= alpha {
			break
		}
	}
	return worst
}
