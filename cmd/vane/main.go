// vane is a UCI chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/vane/pkg/engine"
	"github.com/corvidchess/vane/pkg/engine/uci"
	"github.com/corvidchess/vane/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var hash = flag.Uint("hash", 64, "Transposition table size in MB (zero disables it)")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: vane [options]

vane is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "vane", "corvidchess", eval.Standard{}, engine.WithOptions(engine.Options{
		Hash: lang.Some(*hash),
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
