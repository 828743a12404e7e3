// Package search implements iteratively-deepened negamax with alpha-beta pruning, quiescence
// extension, and Zobrist-keyed transposition memoization.
package search

import (
	"context"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/seekerror/logw"
)

// Bound partitions a stored score by bound type (Exact/Alpha/Beta) crossed with search type
// (main vs. quiescence). Quiescence holds iff Flag >= QExact; a stored quiescence entry is
// strictly weaker than a main-search one at the same depth.
type Bound uint8

const (
	Exact Bound = iota
	Alpha
	Beta
	QExact
	QAlpha
	QBeta
)

// IsQuiescence reports whether b was stored by the quiescence search rather than the main
// negamax search.
func (b Bound) IsQuiescence() bool {
	return b >= QExact
}

// kind strips the quiescence bit, returning the underlying Exact/Alpha/Beta bound type.
func (b Bound) kind() Bound {
	if b.IsQuiescence() {
		return b - QExact
	}
	return b
}

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	case QExact:
		return "QExact"
	case QAlpha:
		return "QAlpha"
	case QBeta:
		return "QBeta"
	default:
		return "?"
	}
}

// Entry is a single transposition table slot. It is a value type: Probe returns a copy, never a
// pointer into the table, so callers cannot observe a torn write.
type Entry struct {
	Key   board.ZobristKey
	Flag  Bound
	Depth int
	Move  board.Move
	Value int
}

// entryBytes approximates the wire size of one Entry for sizing the table from a byte budget; it
// does not need to be exact, only a stable proportionality constant.
const entryBytes = 32

// Table is a fixed-size, open-addressed transposition table keyed by Zobrist hash. There is
// exactly one search thread in this engine's concurrency model, so the table uses plain field
// writes with no locking or atomics.
type Table struct {
	entries  []Entry
	occupied []bool
	capacity int
	used     int

	probes     int
	hits       int
	collisions int
	drops      int
	clears     int
}

// NewTable allocates a table sized from a byte budget: capacity = sizeBytes / entryBytes, at
// least 1.
func NewTable(ctx context.Context, sizeBytes uint64) *Table {
	capacity := int(sizeBytes / entryBytes)
	if capacity < 1 {
		capacity = 1
	}
	logw.Infof(ctx, "Allocating %vMB TT with %v entries", sizeBytes>>20, capacity)
	return &Table{
		entries:  make([]Entry, capacity),
		occupied: make([]bool, capacity),
		capacity: capacity,
	}
}

// Size returns the table's byte budget.
func (t *Table) Size() uint64 {
	return uint64(t.capacity) * entryBytes
}

// Used returns occupancy as a fraction in [0;1].
func (t *Table) Used() float64 {
	return float64(t.used) / float64(t.capacity)
}

// Clear empties every slot and resets the occupancy count; the probe, hit, collision and drop
// statistics are kept, and clears counts the call. Called on ucinewgame and automatically by
// Store when occupancy exceeds 99%.
func (t *Table) Clear() {
	for i := range t.occupied {
		t.occupied[i] = false
	}
	t.used = 0
	t.clears++
}

func (t *Table) slot(key board.ZobristKey) int {
	return int(uint64(key) % uint64(t.capacity))
}

// Probe returns the entry stored under key, if any. It linear-probes from key's home slot until
// it finds a key match (hit), an empty slot (miss), or wraps back to the home slot (miss).
// Probe never fails.
func (t *Table) Probe(key board.ZobristKey) (Entry, bool) {
	t.probes++
	home := t.slot(key)
	i := home
	for {
		if !t.occupied[i] {
			return Entry{}, false
		}
		if t.entries[i].Key == key {
			t.hits++
			return t.entries[i], true
		}
		i = (i + 1) % t.capacity
		if i == home {
			return Entry{}, false
		}
	}
}

// Store inserts or updates the entry for key, applying the replacement policy on a matching key
// and linear probing to find a slot. May silently drop the write if the table is full along the
// entire probe chain; TableFull events are counted, not propagated.
func (t *Table) Store(key board.ZobristKey, flag Bound, depth int, value int, move board.Move) {
	if t.used > (t.capacity*99)/100 {
		t.Clear()
	}

	home := t.slot(key)
	i := home
	probed := 0
	for {
		if !t.occupied[i] {
			t.entries[i] = Entry{Key: key, Flag: flag, Depth: depth, Move: move, Value: value}
			t.occupied[i] = true
			t.used++
			if probed > 0 {
				t.collisions++
			}
			return
		}
		if t.entries[i].Key == key {
			if t.shouldReplace(t.entries[i], flag, depth) {
				t.entries[i] = Entry{Key: key, Flag: flag, Depth: depth, Move: move, Value: value}
			}
			return
		}
		i = (i + 1) % t.capacity
		probed++
		if i == home {
			t.drops++
			return
		}
	}
}

// shouldReplace implements the replacement policy: overwrite iff the new entry is strictly
// deeper at the same search type, or at least as deep and exact, or the stored entry is
// quiescence while the new one is main search.
func (t *Table) shouldReplace(stored Entry, newFlag Bound, newDepth int) bool {
	sameSearchType := stored.Flag.IsQuiescence() == newFlag.IsQuiescence()
	if sameSearchType && newDepth > stored.Depth {
		return true
	}
	if newDepth >= stored.Depth && newFlag.kind() == Exact {
		return true
	}
	if stored.Flag.IsQuiescence() && !newFlag.IsQuiescence() {
		return true
	}
	return false
}

// Lookup probes for key and reports whether the stored entry can resolve the caller's
// alpha-beta window outright. A stored entry is usable iff its search type matches the caller's
// and its depth is sufficient, OR the stored entry is a main-search entry while the caller is in
// quiescence (main-search entries are strictly stronger than quiescence entries).
func (t *Table) Lookup(key board.ZobristKey, depth int, alpha, beta int, isQuiescence bool) (value int, hit bool) {
	entry, found := t.Probe(key)
	if !found {
		return 0, false
	}

	sameType := entry.Flag.IsQuiescence() == isQuiescence
	usable := (sameType && entry.Depth >= depth) || (isQuiescence && !entry.Flag.IsQuiescence())
	if !usable {
		return 0, false
	}

	switch entry.Flag.kind() {
	case Exact:
		return entry.Value, true
	case Alpha:
		if entry.Value <= alpha {
			return entry.Value, true
		}
	case Beta:
		if entry.Value >= beta {
			return entry.Value, true
		}
	}
	return 0, false
}
