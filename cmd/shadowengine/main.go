package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bpowers/shadowcore/pkg/engine"
	"github.com/bpowers/shadowcore/pkg/engine/console"
	"github.com/bpowers/shadowcore/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	hash = flag.Uint("hash", 64, "Transposition table size in MB")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: shadowengine [options]

SHADOWENGINE is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "shadowengine", "bpowers", engine.WithOptions(engine.Options{
		Hash:     *hash,
		MinDepth: 1,
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
