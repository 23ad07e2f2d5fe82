// Package engine encapsulates game-playing logic, owning the board, the transposition
// table and the synchronous search that plays a game of chess one "go" command at a time.
package engine

import (
	"context"
	"fmt"

	"github.com/corvidchess/vane/pkg/board"
	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/corvidchess/vane/pkg/mate"
	"github.com/corvidchess/vane/pkg/search"
	"github.com/corvidchess/vane/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 89, 3)

// Options are engine creation options.
type Options struct {
	// Hash is the transposition table size in MB. If unset or zero, the engine runs without
	// a transposition table.
	Hash lang.Optional[uint]
}

func (o Options) String() string {
	hash, _ := o.Hash.V()
	return fmt.Sprintf("{hash=%vMB}", hash)
}

// Engine owns the board being played on and runs the search described by SPEC_FULL: no
// pondering, no background analysis, a single in-flight search bounded by the deadline
// computed from the "go" command's arguments. It is not safe for concurrent use -- per the
// specification's concurrency model, a single UCI session drives it serially.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	eval eval.Evaluator
	opts Options

	b  *board.Board
	tt search.TranspositionTable
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the engine's runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine using the given evaluator, initialized at the standard starting
// position.
func New(ctx context.Context, name, author string, e eval.Evaluator, opts ...Option) *Engine {
	ret := &Engine{
		name:   name,
		author: author,
		eval:   e,
		zt:     board.NewZobristTable(0),
	}
	for _, fn := range opts {
		fn(ret)
	}

	_ = ret.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", ret.Name(), ret.opts)
	return ret
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// Reset clears the transposition table and sets the board to the given FEN position. It
// implements both "position ..." (with a fresh FEN) and "ucinewgame" (with fen.Initial).
func (e *Engine) Reset(ctx context.Context, position string) error {
	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)

	e.tt = search.NoTranspositionTable{}
	if hash, ok := e.opts.Hash.V(); ok && hash > 0 {
		e.tt = search.NewTranspositionTable(ctx, uint64(hash)<<20)
	}

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// Move applies a single pseudo-legal move, given in UCI long-algebraic form, to the board.
// It is used to replay the moves listed on a "position" command.
func (e *Engine) Move(ctx context.Context, move string) error {
	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %v", err)
	}

	for _, m := range e.b.Position().PseudoLegalMoves(e.b.Turn()) {
		if !candidate.Equals(m) {
			continue
		}
		if !e.b.PushMove(m) {
			return fmt.Errorf("illegal move: %v", m)
		}
		logw.Debugf(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("invalid move: %v", candidate)
}

// Go runs a synchronous iterative-deepening search bounded by the budget computed from args,
// and returns the principal variation found. It blocks for the duration of the search.
func (e *Engine) Go(ctx context.Context, args searchctl.GoArgs) search.PV {
	budget := searchctl.Compute(args, e.b.Turn())
	dl := searchctl.NewDeadline(budget)

	ab := search.AlphaBeta{Eval: e.eval, TT: e.tt}

	logw.Infof(ctx, "Go %v, budget=%v", e.Position(), budget)
	pv := search.IterativeDeepen(ctx, ab, dl, e.b)
	logw.Infof(ctx, "Go completed: %v", pv)
	return pv
}

// SolveMate looks for a forced checkmate in n full moves from the current position.
func (e *Engine) SolveMate(ctx context.Context, n int) mate.Result {
	return mate.Solve(ctx, e.b, n)
}
