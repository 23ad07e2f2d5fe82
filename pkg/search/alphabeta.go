package search

import (
	"context"
	"time"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/search/searchctl"
)

// AlphaBeta implements negamax search with alpha-beta pruning, a transposition table and
// quiescence search at the horizon. Pseudo-code:
//
// function negamax(node, depth, α, β) is
//
//	if node is terminal then
//	    return mate or stalemate score
//	if depth = 0 then
//	    return quiescence(node, α, β)
//	value := −∞
//	for each child of node do
//	    value := max(value, −negamax(child, depth − 1, −β, −α))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* β cutoff *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type AlphaBeta struct {
	Eval eval.Evaluator
	TT   TranspositionTable

	// NoQuiescence disables the horizon's quiescence search, returning the static evaluation
	// instead. It exists only so tests can compare AlphaBeta against Minimax at equal depth
	// over the same evaluator (§8 property 5) without quiescence's extra plies skewing the
	// two searches apart; the playing engine always leaves it false.
	NoQuiescence bool
}

// Search runs alpha-beta to a fixed depth with a practically unbounded deadline. It is not
// used by the playing engine -- IterativeDeepen drives depth and time instead -- but serves
// as the entry point tests use to compare AlphaBeta's score against Minimax's at the same
// depth (testable property 5).
func (ab AlphaBeta) Search(ctx context.Context, b *board.Board, depth int) (uint64, eval.Score) {
	dl := searchctl.NewDeadline(time.Hour)
	return ab.search(ctx, dl, b, depth, 0, eval.NegInf, eval.Inf)
}

// search is the recursive negamax node. In the playing engine it is exercised only for
// children of the root: the root itself is driven by IterativeDeepen, which does not consult
// the transposition table for cutoffs at the root, per the usual iterative-deepening/PV-reuse
// convention. Search, used by tests, calls it at the root as well.
func (ab AlphaBeta) search(ctx context.Context, dl *searchctl.Deadline, b *board.Board, depth, plyFromRoot int, alpha, beta eval.Score) (uint64, eval.Score) {
	if dl.TimeUp() {
		return 0, ab.Eval.Evaluate(ctx, b)
	}

	var nodes uint64 = 1

	if result := b.Result(); result.Outcome == board.Draw {
		return nodes, eval.ZeroScore
	}

	hash := b.Hash()

	var hint board.Move
	if bound, d, score, move, ok := ab.TT.Read(hash); ok {
		hint = move
		if d >= depth {
			switch bound {
			case Exact:
				return nodes, score
			case Lower:
				if score >= beta {
					return nodes, beta
				}
			case Upper:
				if score <= alpha {
					return nodes, alpha
				}
			}
		}
	}

	turn := b.Turn()
	moves := b.Position().LegalMoves(turn, board.All)
	if len(moves) == 0 {
		result := b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			return nodes, -(eval.Mate - eval.Score(plyFromRoot))
		}
		return nodes, eval.ZeroScore
	}

	if depth == 0 {
		if ab.NoQuiescence {
			return nodes, ab.Eval.Evaluate(ctx, b)
		}
		n, score := quiescence(ctx, dl, b, ab.Eval, alpha, beta)
		return nodes + n, score
	}

	origAlpha := alpha
	var best board.Move

	ml := NewMoveList(moves, orderingKey(b, hint))
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}

		b.PushMove(m)
		n, score := ab.search(ctx, dl, b, depth-1, plyFromRoot+1, beta.Negate(), alpha.Negate())
		b.PopMove()
		nodes += n

		if dl.TimeUp() {
			return nodes, alpha
		}

		score = score.Negate()
		if score >= beta {
			ab.TT.Write(hash, Lower, depth, beta, m)
			return nodes, beta
		}
		if score > alpha {
			alpha = score
			best = m
		}
	}

	if alpha > origAlpha {
		ab.TT.Write(hash, Exact, depth, alpha, best)
	} else {
		ab.TT.Write(hash, Upper, depth, alpha, best)
	}
	return nodes, alpha
}
