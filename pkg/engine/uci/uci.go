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

	"github.com/bpowers/shadowcore/pkg/engine"
	"github.com/seekerror/logw"
)

const ProtocolName = "uci"

const defaultMovetime = 1 * time.Second

// Driver implements a UCI driver for an engine. It is activated if sent "uci". Unlike a
// pondering-capable GUI driver, every "go" blocks the input loop until the search returns: the
// engine has exactly one search in flight at a time and nothing to interrupt it but its own
// deadline (see pkg/search's single-threaded model).
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

	// * uci
	//
	//	tell engine to use the uci (universal chess interface),
	//	this will be send once as a first command after program boot
	//	to tell the engine to switch to uci mode.
	//	After receiving the uci command the engine must identify itself with the "id" command
	//	and sent the "option" commands to tell the GUI which engine settings the engine supports if any.
	//	After that the engine should sent "uciok" to acknowledge the uci mode.

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "option name Hash type spin default 64 min 1 max 4096"
	d.out <- "uciok"

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch strings.ToLower(cmd) {
		case "isready":
			// * isready / readyok
			//
			//	Used to synchronize the engine with the GUI: every command this driver handles
			//	runs to completion before the next is read, so the engine is always ready by the
			//	time this fires.

			d.out <- "readyok"

		case "setoption":
			// No tunable options beyond Hash, which is fixed at startup; accepted and ignored so
			// GUIs that always send it don't see an "unknown command" warning.

		case "ucinewgame":
			d.e.NewGame(ctx)

		case "position":
			// * position [fen <fenstring> | startpos ] moves <move1> .... <movei>

			if err := d.handlePosition(ctx, args); err != nil {
				logw.Errorf(ctx, "Invalid position %v: %v", args, err)
			}

		case "go":
			// * go [movetime <x> | depth <x> | wtime <x> btime <x> ...]
			//
			//	start calculating on the current position. Pondering, mate search, and
			//	searchmoves restriction are not supported; every variant below resolves to a
			//	single move-time budget.

			d.handleGo(ctx, args)

		case "stop":
			// There is no running search to interrupt: "go" already blocked until the search
			// returned its bestmove. Nothing to do but acknowledge silently.

		case "ponderhit":
			// Pondering is never started, so this should not arrive; ignored if it does.

		case "quit":
			return

		default:
			logw.Warningf(ctx, "Unknown command %q: %v", cmd, args)
		}
	}

	logw.Infof(ctx, "Input stream broken. Exiting")
}

func (d *Driver) handlePosition(ctx context.Context, args []string) error {
	fenStr := "startpos"
	moves := []string{}

	i := 0
	switch {
	case len(args) > 0 && args[0] == "startpos":
		i = 1
	case len(args) > 0 && args[0] == "fen":
		// FEN is 6 space-separated fields.
		end := 1
		for end < len(args) && end < 7 {
			end++
		}
		fenStr = strings.Join(args[1:end], " ")
		i = end
	}

	if i < len(args) && args[i] == "moves" {
		moves = args[i+1:]
	}

	return d.e.SetPosition(ctx, fenStr, moves)
}

func (d *Driver) handleGo(ctx context.Context, args []string) {
	movetime := defaultMovetime

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "movetime":
			i++
			if i < len(args) {
				if ms, err := strconv.Atoi(args[i]); err == nil {
					movetime = time.Duration(ms) * time.Millisecond
				}
			}
		case "depth", "nodes", "mate", "wtime", "btime", "winc", "binc", "movestogo":
			// Consume the value and fall back to the default move-time budget; none of these
			// map onto the engine's single deadline-based search.
			i++
		case "infinite", "ponder":
			// Neither infinite analysis nor pondering is supported; search under the default
			// budget instead of hanging forever.
		}
	}

	d.e.SetSearchTime(movetime)

	best, err := d.e.Search(ctx)
	if err != nil {
		logw.Errorf(ctx, "Search failed: %v", err)
		d.out <- "bestmove 0000"
		return
	}

	d.out <- fmt.Sprintf("bestmove %v", best)
}
