// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/bpowers/shadowcore/pkg/perft"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Startpos
	}

	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, *position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		if *divide && i == *depth {
			runDivide(pos, i)
		}
		c := perft.Count(pos, i)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,leaves=%v,captures=%v,ep=%v,castles=%v,promotions=%v,checks=%v,%v\n",
			*position, i, c.Leaves, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, duration)
	}
}

func runDivide(pos *board.Position, depth int) {
	// Copy out of pos's shared per-side buffer: perft.Count's recursion regenerates moves for
	// this same side two plies down and would otherwise corrupt this loop's unread entries.
	moves := append([]board.Move(nil), pos.GenerateMoves()...)
	for _, m := range moves {
		pos.Make(m)
		c := perft.Count(pos, depth-1)
		pos.Unmake(m)
		fmt.Printf("%v: %v\n", m, c.Leaves)
	}
}
