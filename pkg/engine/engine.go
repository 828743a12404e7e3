// Package engine provides the facade the host (UCI, console, or test driver) uses to play
// games: newGame, setPosition, setSearchTime, and search.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/bpowers/shadowcore/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const defaultHashMB = 64
const defaultSearchTime = 1 * time.Second

// Options are engine creation options.
type Options struct {
	// Hash is the transposition table size in MB.
	Hash uint
	// MinDepth is reported by String and logged at construction. The search does not read
	// it: the searcher always completes at least one iteration before a deadline can cut a
	// search short, whatever this value is.
	MinDepth int
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, minDepth=%v}", o.Hash, o.MinDepth)
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the engine's creation options (see Options).
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// Engine is the facade around game-state, search, and the transposition table it owns. The
// transposition table and the Zobrist key table outlive any single Position; the Searcher holds a
// non-owning reference to the transposition table and each Position one to the Zobrist key table,
// all exercised through one Engine instance at a time (see pkg/search for the single-threaded
// concurrency model this assumes).
type Engine struct {
	name, author string
	opts         Options

	zt *board.ZobristTable
	tt *search.Table

	mu         sync.Mutex
	pos        *board.Position
	searchTime time.Duration
	searcher   *search.Searcher
}

// New creates an engine with the given name and author, used for UCI identification.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:       name,
		author:     author,
		opts:       Options{Hash: defaultHashMB, MinDepth: 1},
		searchTime: defaultSearchTime,
	}
	for _, fn := range opts {
		fn(e)
	}

	e.zt = board.NewZobristTable()
	e.tt = search.NewTable(ctx, uint64(e.opts.Hash)<<20)
	e.searcher = search.NewSearcher(e.tt)

	e.NewGame(ctx)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// NewGame clears the transposition table and resets the board to the standard starting position.
func (e *Engine) NewGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "ucinewgame")

	e.tt.Clear()
	e.pos = board.NewStandardPosition(e.zt)
}

// SetSearchTime configures the deadline for the next Search call.
func (e *Engine) SetSearchTime(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.searchTime = d
}

// SetPosition installs fenStr ("startpos" or a FEN record) and then applies each UCI move in
// moves in order. For a promotion suffix ('q', 'r', 'b', 'n'), the destination square's piece is
// replaced by the requested promoted piece after the move's default queen promotion, since the
// move generator only ever produces queen promotions.
func (e *Engine) SetPosition(ctx context.Context, fenStr string, moves []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if fenStr == "" || fenStr == "startpos" {
		fenStr = fen.Startpos
	}

	pos, err := fen.Decode(e.zt, fenStr)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.pos = pos

	for _, uciMove := range moves {
		if err := e.applyUCIMove(uciMove); err != nil {
			return err
		}
	}

	logw.Debugf(ctx, "position: %v", fen.Encode(e.pos, e.pos.SideToMove(), 0, 1))
	return nil
}

func (e *Engine) applyUCIMove(uciMove string) error {
	if len(uciMove) < 4 || len(uciMove) > 5 {
		return fmt.Errorf("invalid move %q", uciMove)
	}
	from, err := board.ParseSquare(uciMove[0:2])
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", uciMove, err)
	}
	to, err := board.ParseSquare(uciMove[2:4])
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", uciMove, err)
	}

	m, ok := e.pos.FindMove(from, to)
	if !ok {
		return fmt.Errorf("move not found: %v", uciMove)
	}
	e.pos.Make(m)

	if len(uciMove) == 5 && m.IsPromotion() {
		piece, _, ok := board.ParsePiece(uciMove[4])
		if ok && piece != board.Queen {
			_, movedColor, _ := e.pos.At(to)
			e.pos.OverwritePiece(to, piece, movedColor)
		}
	}
	return nil
}

// Position returns the current position in FEN notation.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos, e.pos.SideToMove(), 0, 1)
}

// Board returns the live position for read-only inspection (board rendering, perft, static
// evaluation). Callers must not hold onto it across a Search or SetPosition call.
func (e *Engine) Board() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos
}

// Search runs iterative deepening for the configured search time and returns the best move
// found, in UCI notation.
func (e *Engine) Search(ctx context.Context) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pos.GenerateMoves()) == 0 {
		return 0, fmt.Errorf("no legal moves in current position")
	}

	best, score := e.searcher.IterativeDeepening(ctx, e.pos, e.searchTime)
	nodes, used := e.searcher.Stats()
	logw.Infof(ctx, "bestmove %v score=%v nodes=%v tt=%.1f%%", best, score, nodes, used*100)

	return best, nil
}
