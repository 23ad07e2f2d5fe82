// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/vane/pkg/board/fen"
	"github.com/corvidchess/vane/pkg/engine"
	"github.com/corvidchess/vane/pkg/search/searchctl"
	"github.com/seekerror/logw"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an engine, run synchronously: each "go" is searched to
// completion (or to its deadline) before the next input line is read. There is no pondering
// and no "stop" handling -- the only way a search ends early is the deadline computed from
// the "go" command itself.
type Driver struct {
	e   *engine.Engine
	out chan<- string

	quit chan struct{}
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.quit)
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "uciok"

	for {
		line, ok := <-in
		if !ok {
			logw.Infof(ctx, "Input stream broken. Exiting")
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "uci":
			d.out <- fmt.Sprintf("id name %v", d.e.Name())
			d.out <- fmt.Sprintf("id author %v", d.e.Author())
			d.out <- "uciok"

		case "isready":
			d.out <- "readyok"

		case "ucinewgame":
			_ = d.e.Reset(ctx, fen.Initial)

		case "position":
			d.position(ctx, args)

		case "go":
			d.goCmd(ctx, args)

		case "quit":
			return

		default:
			// Malformed or unrecognized input is silently ignored.
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// position implements "position startpos|fen <fields> [moves ...]". A malformed FEN falls
// back to the standard starting position; the move list is applied move by move and
// truncated at the first move that fails to parse or is illegal, without any error output.
func (d *Driver) position(ctx context.Context, args []string) {
	position := fen.Initial
	rest := args

	switch {
	case len(args) > 0 && args[0] == "startpos":
		rest = args[1:]
	case len(args) >= 7 && args[0] == "fen":
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		_ = d.e.Reset(ctx, fen.Initial)
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		rest = rest[1:]
	}
	for _, mv := range rest {
		if err := d.e.Move(ctx, mv); err != nil {
			break
		}
	}
}

// goCmd implements "go [depth D | movetime M | wtime W btime B ...]". It computes the search
// budget per the time controller's rules, runs the search to completion, and always emits a
// single "bestmove" line: the null move "0000" if the position has no legal moves.
func (d *Driver) goCmd(ctx context.Context, args []string) {
	var goArgs searchctl.GoArgs
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch tok {
		case "depth", "movetime", "wtime", "btime":
			if i+1 >= len(args) {
				continue
			}
			n, err := strconv.Atoi(args[i+1])
			i++
			if err != nil {
				continue
			}

			switch tok {
			case "depth":
				goArgs.Depth = n
			case "movetime":
				goArgs.MoveTime = time.Duration(n) * time.Millisecond
			case "wtime":
				goArgs.WTime = time.Duration(n) * time.Millisecond
			case "btime":
				goArgs.BTime = time.Duration(n) * time.Millisecond
			}
			if goArgs.First == "" {
				goArgs.First = tok
			}

		default:
			// winc, binc, movestogo, ponder, infinite, searchmoves, etc.: not part of this
			// engine's time controller, silently ignored.
		}
	}

	pv := d.e.Go(ctx, goArgs)
	if len(pv.Moves) == 0 {
		d.out <- "bestmove 0000"
		return
	}
	d.out <- fmt.Sprintf("bestmove %v", pv.BestMove())
}
