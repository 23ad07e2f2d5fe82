// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/corvidchess/vane/pkg/board"
)

// Evaluator is a static position evaluator. Evaluate returns the score from the perspective
// of the side to move: positive favors b.Turn(), negative favors the opponent.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material is the side-to-move-relative nominal material balance. It is not used by the
// playing engine, but serves as a deliberately simple oracle that the full Standard
// evaluator's output can be compared against in tests.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	var score Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		n := pos.Piece(turn, p).PopCount() - pos.Piece(turn.Opponent(), p).PopCount()
		score += Score(n) * NominalValue(p)
	}
	return score
}

// NominalValue is the absolute nominal value of a piece in centipawns. The King has an
// arbitrary large value so that it dominates any material comparison it enters.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain, in centipawns, from making the move.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
