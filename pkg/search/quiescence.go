package search

import (
	"context"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search/searchctl"
)

// quiescence extends the search along capturing and promoting lines only, to avoid
// misjudging a position in the middle of an exchange (the horizon effect). It has no depth
// limit of its own -- captures are finite -- uses no transposition table, and never claims
// mate or stalemate, since it only ever considers a subset of the legal moves.
func quiescence(ctx context.Context, dl *searchctl.Deadline, b *board.Board, e eval.Evaluator, alpha, beta eval.Score) (uint64, eval.Score) {
	if dl.TimeUp() {
		return 0, e.Evaluate(ctx, b)
	}

	var nodes uint64 = 1

	stand := e.Evaluate(ctx, b)
	if stand >= beta {
		return nodes, beta
	}
	if stand > alpha {
		alpha = stand
	}

	turn := b.Turn()
	candidates := b.Position().LegalMoves(turn, board.Captures)
	for _, m := range b.Position().LegalMoves(turn, board.Quiets) {
		if m.IsPromotion() {
			candidates = append(candidates, m)
		}
	}

	ml := NewMoveList(candidates, mvvLVA)
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}

		b.PushMove(m)
		n, score := quiescence(ctx, dl, b, e, beta.Negate(), alpha.Negate())
		b.PopMove()
		score = score.Negate()
		nodes += n

		if dl.TimeUp() {
			return nodes, alpha
		}
		if score >= beta {
			return nodes, beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return nodes, alpha
}
