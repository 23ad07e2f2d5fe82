package search

import (
	"container/heap"
	"fmt"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/eval"
)

// Priority represents a move ordering priority: higher values are searched first.
type Priority int32

// Move ordering buckets, highest priority first: the transposition-table hint move, then
// captures by MVV-LVA, then promotions, then checks, then castling, then all other quiets.
const (
	hintPriority        Priority = 5_000_000
	capturePriorityBase Priority = 1_000_000
	promotionPriority   Priority = 900_000
	checkPriority       Priority = 800_000
	castlePriority      Priority = 700_000
	quietPriority       Priority = 0
)

// MoveList is a move priority queue used for move ordering during search.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priority function. Ties are broken by
// the moves' original order in moves.
func NewMoveList(moves []board.Move, fn func(move board.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m), idx: i}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move, the highest priority move remaining in the list.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
	idx int
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	if h[i].val != h[j].val {
		return h[i].val > h[j].val
	}
	return h[i].idx < h[j].idx
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// mvvLVA returns the most-valuable-victim/least-valuable-attacker priority for a capture.
func mvvLVA(m board.Move) Priority {
	return Priority(10*eval.NominalValueGain(m) - eval.NominalValue(m.Piece))
}

// orderingKey returns the move-ordering bucket+priority function for a node, given the
// transposition-table hint move (the zero move if none) and the board to test for checks.
// Checks are detected by making and unmaking the move on the shared board, per REDESIGN FLAG 4.
func orderingKey(b *board.Board, hint board.Move) func(board.Move) Priority {
	hasHint := hint != (board.Move{})
	return func(m board.Move) Priority {
		switch {
		case hasHint && m.Equals(hint):
			return hintPriority
		case m.IsCapture():
			return capturePriorityBase + mvvLVA(m)
		case m.IsPromotion():
			return promotionPriority
		case givesCheck(b, m):
			return checkPriority
		case m.IsCastle():
			return castlePriority
		default:
			return quietPriority
		}
	}
}

func givesCheck(b *board.Board, m board.Move) bool {
	if !b.PushMove(m) {
		return false
	}
	check := b.Position().IsChecked(b.Turn())
	b.PopMove()
	return check
}
