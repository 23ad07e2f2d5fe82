package search

import (
	"context"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound represents the bound of a -- possibly inexact -- search score, per the standard
// alpha-beta transposition table convention: Exact if the true minimax value was found,
// Lower if a beta cutoff occurred (the true value is at least the stored score), Upper if
// no move raised alpha (the true value is at most the stored score).
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "?"
	}
}

// TranspositionTable caches search results keyed by position hash, to avoid re-searching
// positions reachable via a different move order. The playing engine runs single-threaded,
// so implementations need not be safe for concurrent use.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move stored for the position hash, if present.
	Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool)
	// Write stores an entry, subject to the table's replacement policy.
	Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move)

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

// entry captures one cached search result. The best move is stored only by From/To/Promotion,
// since it is only ever used as a move-ordering hint matched against freshly generated moves.
type entry struct {
	valid     bool
	hash      board.ZobristHash
	bound     Bound
	depth     int
	score     eval.Score
	from, to  board.Square
	promotion board.Piece
}

// table is a fixed-size, depth-preferred replacement transposition table.
type table struct {
	slots []entry
	mask  uint64
	used  uint64
}

// NewTranspositionTable allocates a table sized to the largest power of two of entries that
// fits within size bytes.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	const entrySize = uint64(unsafe.Sizeof(entry{}))
	n := uint64(1) << uint(63-bits.LeadingZeros64(size/entrySize))
	if n == 0 {
		n = 1
	}

	logw.Infof(ctx, "allocating %vMB transposition table with %v entries", size>>20, n)

	return &table{
		slots: make([]entry, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * uint64(unsafe.Sizeof(entry{}))
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.slots))
}

func (t *table) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	e := &t.slots[uint64(hash)&t.mask]
	if !e.valid || e.hash != hash {
		return 0, 0, 0, board.Move{}, false
	}
	move := board.Move{From: e.from, To: e.to, Promotion: e.promotion}
	return e.bound, e.depth, e.score, move, true
}

// Write replaces the slot unless it already holds a result searched strictly deeper for the
// same position; a deeper prior search is more valuable than a shallower new one.
func (t *table) Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move) {
	e := &t.slots[uint64(hash)&t.mask]
	if e.valid && e.hash == hash && e.depth > depth {
		return
	}
	if !e.valid {
		t.used++
	}

	*e = entry{
		valid:     true,
		hash:      hash,
		bound:     bound,
		depth:     depth,
		score:     score,
		from:      move.From,
		to:        move.To,
		promotion: move.Promotion,
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a no-op implementation, used by the engine when its hash size is
// zero and by tests that want to exercise search logic without cache interference.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (NoTranspositionTable) Write(hash board.ZobristHash, bound Bound, depth int, score eval.Score, move board.Move) {
}

func (NoTranspositionTable) Size() uint64 {
	return 0
}

func (NoTranspositionTable) Used() float64 {
	return 0
}
