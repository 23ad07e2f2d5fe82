package search

import (
	"context"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
)

// Minimax implements naive negamax search with no pruning, no move ordering and no
// transposition table. It is not used by the playing engine: it exists as a soundness
// oracle that AlphaBeta's score, run to the same depth over the same evaluator, is checked
// against in tests. Pseudo-code:
//
// function negamax(node, depth) is
//
//	if depth = 0 or node is terminal then
//	    return the heuristic value of node
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1))
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type Minimax struct {
	Eval eval.Evaluator
}

func (m Minimax) Search(ctx context.Context, b *board.Board, depth int) (uint64, eval.Score) {
	return m.search(ctx, b, depth, 0)
}

func (m Minimax) search(ctx context.Context, b *board.Board, depth, plyFromRoot int) (uint64, eval.Score) {
	turn := b.Turn()
	moves := b.Position().LegalMoves(turn, board.All)
	if len(moves) == 0 {
		if b.Position().IsChecked(turn) {
			return 1, -(eval.Mate - eval.Score(plyFromRoot))
		}
		return 1, eval.ZeroScore
	}
	if depth == 0 {
		return 1, m.Eval.Evaluate(ctx, b)
	}

	var nodes uint64 = 1
	best := eval.NegInf
	for _, mv := range moves {
		b.PushMove(mv)
		n, score := m.search(ctx, b, depth-1, plyFromRoot+1)
		b.PopMove()
		nodes += n

		score = score.Negate()
		if score > best {
			best = score
		}
	}
	return nodes, best
}
