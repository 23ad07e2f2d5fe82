// Package searchctl computes search time budgets and tracks the wall-clock deadline that
// bounds a single "go" command.
package searchctl

import (
	"time"

	"github.com/corvidchess/vane/pkg/board"
)

// GoArgs mirrors the subset of the UCI "go" command parameters the time controller consumes.
type GoArgs struct {
	Depth    int           // "go depth N"
	MoveTime time.Duration // "go movetime M"
	WTime    time.Duration // "go wtime .."
	BTime    time.Duration // ".. btime .."

	// First names whichever of "depth", "movetime" or "wtime"/"btime" appeared first on the
	// "go" command line, so Compute can honor "the first matching token wins" instead of a
	// fixed precedence when more than one is present. Left empty, Compute falls back to the
	// fixed depth > movetime > clock order.
	First string
}

const (
	defaultBudget    = 5 * time.Second
	minBudget        = 100 * time.Millisecond
	movetimeMargin   = 100 * time.Millisecond
	remainingDivisor = 20
)

// Compute returns the search time budget for the color to move. The first matching rule,
// in command-line order when known (args.First), otherwise in this fixed precedence:
//
//  1. go depth N:     N * 1000ms
//  2. go movetime M:  M - 100ms, floored at 100ms
//  3. go wtime/btime: remaining/20, floored at 100ms
//  4. otherwise:      5000ms
func Compute(args GoArgs, turn board.Color) time.Duration {
	switch args.First {
	case "depth":
		if args.Depth > 0 {
			return time.Duration(args.Depth) * time.Second
		}
	case "movetime":
		if args.MoveTime > 0 {
			return max(args.MoveTime-movetimeMargin, minBudget)
		}
	case "wtime", "btime":
		if args.WTime > 0 || args.BTime > 0 {
			return clockBudget(args, turn)
		}
	}

	switch {
	case args.Depth > 0:
		return time.Duration(args.Depth) * time.Second
	case args.MoveTime > 0:
		return max(args.MoveTime-movetimeMargin, minBudget)
	case args.WTime > 0 || args.BTime > 0:
		return clockBudget(args, turn)
	default:
		return defaultBudget
	}
}

func clockBudget(args GoArgs, turn board.Color) time.Duration {
	remaining := args.WTime
	if turn == board.Black {
		remaining = args.BTime
	}
	return max(remaining/remainingDivisor, minBudget)
}
