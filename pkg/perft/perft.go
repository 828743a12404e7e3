// Package perft counts move-generation leaves at a fixed depth, for validating a position's
// generators against canonical reference counts. See https://www.chessprogramming.org/Perft_Results.
package perft

import "github.com/bpowers/shadowcore/pkg/board"

// Counter tallies the outcome of one perft run. It is scoped to a single call rather than using
// process-global counters, so concurrent or repeated runs never interfere with each other.
type Counter struct {
	Leaves     int64
	Captures   int64
	EnPassants int64
	Castles    int64
	Promotions int64
	Checks     int64
}

// Count runs perft to exactly depth d from pos, mutating pos's move history via make/unmake and
// restoring it before returning. Promotions are tallied x4 (queen/rook/bishop/knight) even
// though the move generator only ever produces queen promotions, matching the FIDE-standard
// perft convention.
func Count(pos *board.Position, depth int) Counter {
	var c Counter
	c.walk(pos, depth)
	return c
}

func (c *Counter) walk(pos *board.Position, depth int) {
	if depth == 0 {
		c.Leaves++
		return
	}

	// GenerateMoves returns pos's shared per-side buffer; walk's recursion regenerates moves for
	// the same side two plies down and would otherwise corrupt this loop's unread entries.
	moves := append([]board.Move(nil), pos.GenerateMoves()...)
	for _, m := range moves {
		if depth == 1 {
			c.tally(pos, m)
		}
		pos.Make(m)
		c.walk(pos, depth-1)
		pos.Unmake(m)
	}
}

func (c *Counter) tally(pos *board.Position, m board.Move) {
	if m.IsEnPassant() {
		c.EnPassants++
		c.Captures++
	} else if m.IsCapture() {
		c.Captures++
	}
	if m.IsCastle() {
		c.Castles++
	}
	if m.IsPromotion() {
		c.Promotions += 4
	}

	pos.Make(m)
	if pos.InCheck() {
		c.Checks++
	}
	pos.Unmake(m)
}
