package uci_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvidchess/vane/pkg/engine"
	"github.com/corvidchess/vane/pkg/engine/uci"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUCIHandshake exercises the "uci" preamble: id name/author followed by uciok.
func TestUCIHandshake(t *testing.T) {
	d, in, out := newDriver(t, eval.Standard{})
	defer close(in)

	assert.Contains(t, recvUntil(t, out, "uciok"), "uciok")
	_ = d
}

func TestUCIIsReady(t *testing.T) {
	_, in, out := newDriver(t, eval.Standard{})
	defer close(in)

	recvUntil(t, out, "uciok")
	in <- "isready"
	assert.Equal(t, "readyok", recv(t, out))
}

// TestUCIMateInOne exercises scenario S1: given a mate-in-one position and a generous
// movetime, "go" must return the mating move.
func TestUCIMateInOne(t *testing.T) {
	_, in, out := newDriver(t, eval.Material{})
	defer close(in)

	recvUntil(t, out, "uciok")
	in <- "position fen k7/7R/6R1/8/8/8/8/7K w - - 0 1"
	in <- "go movetime 2000"

	line := recvWithin(t, out, 5*time.Second)
	assert.Contains(t, line, "bestmove")
	assert.NotContains(t, line, "0000")
	assert.Equal(t, "bestmove g6g8", line)
}

// TestUCINoLegalMovesReturnsNullMove exercises the "bestmove 0000" convention for a position
// with no legal moves (stalemate).
func TestUCINoLegalMovesReturnsNullMove(t *testing.T) {
	_, in, out := newDriver(t, eval.Material{})
	defer close(in)

	recvUntil(t, out, "uciok")
	in <- "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	in <- "go depth 1"

	assert.Equal(t, "bestmove 0000", recvWithin(t, out, 5*time.Second))
}

// TestUCIMoveTimeReturnsPromptly exercises scenario S5: a small movetime budget must not
// make the driver hang waiting on a deep search.
func TestUCIMoveTimeReturnsPromptly(t *testing.T) {
	_, in, out := newDriver(t, eval.Standard{})
	defer close(in)

	recvUntil(t, out, "uciok")
	in <- "go movetime 50"

	start := time.Now()
	line := recvWithin(t, out, 2*time.Second)
	assert.Contains(t, line, "bestmove")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestUCIQuitClosesDriver(t *testing.T) {
	d, in, out := newDriver(t, eval.Standard{})
	recvUntil(t, out, "uciok")

	in <- "quit"
	select {
	case <-d.Closed():
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not close after quit")
	}
}

func newDriver(t *testing.T, e eval.Evaluator) (*uci.Driver, chan string, <-chan string) {
	t.Helper()

	ctx := context.Background()
	eng := engine.New(ctx, "vane", "corvidchess", e)

	in := make(chan string, 10)
	d, out := uci.NewDriver(ctx, eng, in)
	return d, in, out
}

func recv(t *testing.T, out <-chan string) string {
	t.Helper()
	return recvWithin(t, out, 2*time.Second)
}

func recvWithin(t *testing.T, out <-chan string, d time.Duration) string {
	t.Helper()
	select {
	case line, ok := <-out:
		require.True(t, ok, "output channel closed unexpectedly")
		return line
	case <-time.After(d):
		t.Fatal("timed out waiting for output")
		return ""
	}
}

// recvUntil drains lines until one equal to want is seen, returning that line.
func recvUntil(t *testing.T, out <-chan string, want string) string {
	t.Helper()
	for i := 0; i < 10; i++ {
		line := recvWithin(t, out, 2*time.Second)
		if line == want {
			return line
		}
	}
	t.Fatalf("never saw %q", want)
	return ""
}
