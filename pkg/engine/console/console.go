// Package console implements a line-based debug driver for the engine: board rendering, move
// entry, perft, and static evaluation, outside of the UCI protocol.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/engine"
	"github.com/bpowers/shadowcore/pkg/eval"
	"github.com/bpowers/shadowcore/pkg/perft"
	"github.com/seekerror/logw"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
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

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch strings.ToLower(cmd) {
		case "reset", "r":
			// reset [<fenstring>] [moves ...]

			fenStr := "startpos"
			rest := args
			if len(args) >= 6 && args[0] != "moves" {
				fenStr = strings.Join(args[0:6], " ")
				rest = args[6:]
			}

			var moves []string
			if len(rest) > 0 && rest[0] == "moves" {
				moves = rest[1:]
			}

			if err := d.e.SetPosition(ctx, fenStr, moves); err != nil {
				d.out <- fmt.Sprintf("invalid position: %v", err)
				break
			}
			d.printBoard()

		case "print", "p":
			d.printBoard()

		case "go", "analyze", "a":
			movetime := 1000
			if len(args) > 0 {
				if ms, err := strconv.Atoi(args[0]); err == nil {
					movetime = ms
				}
			}
			d.e.SetSearchTime(time.Duration(movetime) * time.Millisecond)

			best, err := d.e.Search(ctx)
			if err != nil {
				d.out <- fmt.Sprintf("search failed: %v", err)
				break
			}
			d.out <- fmt.Sprintf("bestmove %v", best)

		case "perft":
			depth := 4
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					depth = n
				}
			}
			c := perft.Count(d.e.Board(), depth)
			d.out <- fmt.Sprintf("perft(%v): leaves=%v captures=%v ep=%v castles=%v promotions=%v checks=%v",
				depth, c.Leaves, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks)

		case "eval":
			d.out <- fmt.Sprintf("eval: %v", eval.Evaluate(d.e.Board()))

		case "quit", "exit", "q":
			return

		case "":
			// ignore empty command

		default:
			// Assume a UCI-style move if not a recognized command.

			if err := d.e.SetPosition(ctx, d.e.Position(), []string{cmd}); err != nil {
				d.out <- fmt.Sprintf("invalid move: %q", cmd)
			} else {
				d.printBoard()
			}
		}
	}

	logw.Infof(ctx, "Driver closed")
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	pos := d.e.Board()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for rank := int8(0); rank < 8; rank++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d", 8-rank))
		sb.WriteString(vertical)
		for file := int8(0); file < 8; file++ {
			if piece, color, ok := pos.At(board.NewSquare(rank, file)); ok {
				sb.WriteString(printPiece(color, piece))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen: %v", d.e.Position())
	d.out <- fmt.Sprintf("side to move: %v, check: %v", pos.SideToMove(), pos.InCheck())
	d.out <- ""
}

func printPiece(c board.Color, p board.Piece) string {
	if c == board.White {
		return strings.ToUpper(p.String())
	}
	return strings.ToLower(p.String())
}
