package eval

import (
	"context"
	"math"

	"github.com/corvidchess/vane/pkg/board"
)

// Standard is the engine's default positional evaluator. It combines material, center
// control, pawn structure, king placement, rook activity and the bishop pair, each scored
// in centipawns from White's perspective and finally flipped to the side to move.
type Standard struct{}

const (
	centerSquareBonus = 30
	centerPawnBonus   = 15
	bishopPairBonus   = 50
	openFileBonus     = 25
	seventhRankBonus  = 20
	kingShieldBonus   = 10
	endgameMaterial   = 2500
)

var centerSquares = []board.Square{board.D4, board.D5, board.E4, board.E5}
var whiteCenterPawnSquares = []board.Square{board.C3, board.D3, board.E3, board.F3}
var blackCenterPawnSquares = []board.Square{board.C6, board.D6, board.E6, board.F6}

func (Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	turn := b.Turn()
	pos := b.Position()

	if len(pos.LegalMoves(turn, board.All)) == 0 {
		if pos.IsChecked(turn) {
			return -Mate
		}
		return ZeroScore
	}

	score := material(pos) +
		centerControl(pos) +
		pawnStructure(pos) +
		kingPlacement(pos) +
		rookActivity(pos) +
		bishopPair(pos)

	if turn == board.Black {
		score = -score
	}
	return score
}

func material(pos *board.Position) Score {
	var score Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		n := pos.Piece(board.White, p).PopCount() - pos.Piece(board.Black, p).PopCount()
		score += Score(n) * NominalValue(p)
	}
	return score
}

// nonKingMaterial is used only to detect the endgame phase: the combined value, both sides,
// of queens, rooks, bishops and knights. Kings and pawns are excluded, since neither reflects
// the loss of fighting material that defines an endgame.
func nonKingMaterial(pos *board.Position) Score {
	var score Score
	for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		n := pos.Piece(board.White, p).PopCount() + pos.Piece(board.Black, p).PopCount()
		score += Score(n) * NominalValue(p)
	}
	return score
}

func isEndgame(pos *board.Position) bool {
	return nonKingMaterial(pos) < endgameMaterial
}

func centerControl(pos *board.Position) Score {
	if isEndgame(pos) {
		return 0
	}

	var score Score
	for _, sq := range centerSquares {
		if c, _, ok := pos.Square(sq); ok {
			if c == board.White {
				score += centerSquareBonus
			} else {
				score -= centerSquareBonus
			}
		}
	}
	for _, sq := range whiteCenterPawnSquares {
		if c, p, ok := pos.Square(sq); ok && c == board.White && p == board.Pawn {
			score += centerPawnBonus
		}
	}
	for _, sq := range blackCenterPawnSquares {
		if c, p, ok := pos.Square(sq); ok && c == board.Black && p == board.Pawn {
			score -= centerPawnBonus
		}
	}
	return score
}

func pawnStructure(pos *board.Position) Score {
	return pawnAdvancement(pos, board.White) - pawnAdvancement(pos, board.Black) +
		passedPawns(pos, board.White) - passedPawns(pos, board.Black)
}

// pawnAdvancement rewards pawns for marching up the board: a baseline of 3 points per rank
// advanced, with an extra 5 points per rank down the center on the d- and e-files
// plus flat bumps for reaching rank 4 or rank 5.
func pawnAdvancement(pos *board.Position, c board.Color) Score {
	var score Score
	for _, sq := range pos.Piece(c, board.Pawn).ToSquares() {
		r := int(sq.Rank())
		if c == board.Black {
			r = int(board.Rank8) - r
		}

		bonus := 3 * r
		if sq.File() == board.FileD || sq.File() == board.FileE {
			bonus += 5 * r
			switch r {
			case 3:
				bonus += 10
			case 4:
				bonus += 15
			}
		}
		score += Score(bonus)
	}
	return score
}

// passedPawns rewards pawns with a clear run to promotion, scaled by how far they already
// are up the board and doubled once the game has reached the endgame.
func passedPawns(pos *board.Position, c board.Color) Score {
	opp := pos.Piece(c.Opponent(), board.Pawn)
	k := Score(25)
	if isEndgame(pos) {
		k = 50
	}

	var score Score
	for _, sq := range pos.Piece(c, board.Pawn).ToSquares() {
		if !isPassed(sq, c, opp) {
			continue
		}

		r := int(sq.Rank())
		if c == board.White {
			if r > 3 {
				score += k * Score(r-3)
			}
		} else {
			if r < 4 {
				score += k * Score(4-r)
			}
		}
	}
	return score
}

// isPassed returns true iff no opposing pawn occupies sq's file or either neighboring file
// on any rank ahead of sq, in the direction c is advancing.
func isPassed(sq board.Square, c board.Color, opp board.Bitboard) bool {
	f := int(sq.File())
	files := board.BitFile(sq.File())
	if f > 0 {
		files |= board.BitFile(board.File(f - 1))
	}
	if f+1 < int(board.NumFiles) {
		files |= board.BitFile(board.File(f + 1))
	}

	var ahead board.Bitboard
	if c == board.White {
		for r := sq.Rank() + 1; r < board.NumRanks; r++ {
			ahead |= board.BitRank(r)
		}
	} else {
		for r := board.ZeroRank; r < sq.Rank(); r++ {
			ahead |= board.BitRank(r)
		}
	}

	return opp&files&ahead == 0
}

func kingPlacement(pos *board.Position) Score {
	if isEndgame(pos) {
		return kingCentralization(pos, board.White) - kingCentralization(pos, board.Black)
	}
	return kingShield(pos, board.White) - kingShield(pos, board.Black)
}

// kingCentralization rewards a king that has moved toward the board's center, the way an
// endgame king should, measured as Manhattan distance from the central point (3.5, 3.5).
func kingCentralization(pos *board.Position, c board.Color) Score {
	sq := pos.Piece(c, board.King).LastPopSquare()
	fileDist := math.Abs(float64(sq.File()) - 3.5)
	rankDist := math.Abs(float64(sq.Rank()) - 3.5)
	return Score((7 - (fileDist + rankDist)) * 10)
}

// kingShield rewards own pawns on the rank directly in front of the king, across the king's
// file and its two neighbors.
func kingShield(pos *board.Position, c board.Color) Score {
	sq := pos.Piece(c, board.King).LastPopSquare()
	f := int(sq.File())
	r := int(sq.Rank()) + 1
	if c == board.Black {
		r = int(sq.Rank()) - 1
	}
	if r < 0 || r >= int(board.NumRanks) {
		return 0
	}

	pawns := pos.Piece(c, board.Pawn)
	var score Score
	for _, df := range []int{-1, 0, 1} {
		nf := f + df
		if nf < 0 || nf >= int(board.NumFiles) {
			continue
		}
		if pawns.IsSet(board.NewSquare(board.File(nf), board.Rank(r))) {
			score += kingShieldBonus
		}
	}
	return score
}

func rookActivity(pos *board.Position) Score {
	return rookActivityFor(pos, board.White) - rookActivityFor(pos, board.Black)
}

func rookActivityFor(pos *board.Position, c board.Color) Score {
	pawns := pos.Piece(board.White, board.Pawn) | pos.Piece(board.Black, board.Pawn)
	seventh := board.Rank7
	if c == board.Black {
		seventh = board.Rank2
	}

	var score Score
	for _, sq := range pos.Piece(c, board.Rook).ToSquares() {
		if pawns&board.BitFile(sq.File()) == 0 {
			score += openFileBonus
		}
		if sq.Rank() == seventh {
			score += seventhRankBonus
		}
	}
	return score
}

func bishopPair(pos *board.Position) Score {
	var score Score
	if pos.Piece(board.White, board.Bishop).PopCount() >= 2 {
		score += bishopPairBonus
	}
	if pos.Piece(board.Black, board.Bishop).PopCount() >= 2 {
		score -= bishopPairBonus
	}
	return score
}
