package eval

import "fmt"

// Score is a position score in centipawns, relative to the side to move: positive favors
// the player on move, negative favors the opponent. Mate scores are distinguished from
// ordinary material/positional scores by magnitude (see MateThreshold) and are ply-adjusted
// so that shorter mates score higher than longer ones.
type Score int32

const (
	ZeroScore Score = 0

	// Mate is the score magnitude assigned to a checkmate delivered on the current move. A
	// mate found further from the root is reported as Mate minus the ply distance, so
	// MateThreshold below distinguishes any genuine mate score from ordinary evaluation noise.
	Mate Score = 20000

	// MateThreshold is the smallest magnitude that can only be produced by a forced mate.
	MateThreshold Score = 19000

	// Inf and NegInf bound the alpha-beta search window; they must never be returned as a
	// final score, only used as window edges.
	Inf    Score = 1 << 30
	NegInf Score = -Inf
)

// IsMate returns true iff the score reports a forced mate (for either side).
func (s Score) IsMate() bool {
	return s > MateThreshold || s < -MateThreshold
}

// Negate flips the score to the other side's perspective, as required at every negamax level.
func (s Score) Negate() Score {
	return -s
}

func (s Score) String() string {
	switch {
	case s > MateThreshold:
		return fmt.Sprintf("mate%+d", (Mate-s+1)/2)
	case s < -MateThreshold:
		return fmt.Sprintf("mate%+d", -(Mate+s+1)/2)
	default:
		return fmt.Sprintf("%+.2f", float64(s)/100)
	}
}
