package search

import (
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
)

const (
	// infinity bounds the root alpha-beta window. It is comfortably larger than
	// mateThreshold so mate scores are still distinguishable from it.
	infinity = 1 << 30

	// mateThreshold: a score whose magnitude exceeds this encodes "forced mate", with the
	// exact magnitude encoding the distance (closer mates score closer to infinity).
	mateThreshold = 1_000_000_000

	// mateScore is returned at a node with no legal moves while in check: checkmate right
	// here. It gets its magnitude reduced by one for every ply it's propagated back toward
	// the root (see adjustMateDistance).
	mateScore = -(infinity - 2)

	// maxDepth bounds iterative deepening; QMaxDepth bounds the quiescence extension.
	maxDepth     = 255
	QMaxDepth    = 32
	defaultMinDepth = 1
)

// Searcher runs iteratively-deepened negamax against one shared transposition table. It is not
// safe for concurrent use: the engine's concurrency model is single-threaded, so a Searcher is
// only ever driven by one goroutine at a time.
type Searcher struct {
	tt *Table

	// minimumDepth guarantees at least one fully completed iterative-deepening iteration
	// before a deadline can cut the search short.
	minimumDepth int

	deadlineAt   int64 // unix nanos; set by IterativeDeepening for this run.
	hasDeadline  bool
	brokeEarly   bool

	nodes int64

	bestMoveThisIteration  board.Move
	bestScoreThisIteration int
}

// NewSearcher creates a Searcher backed by the given transposition table.
func NewSearcher(tt *Table) *Searcher {
	return &Searcher{tt: tt, minimumDepth: defaultMinDepth}
}

// Stats returns node count and TT occupancy, useful for UCI info lines.
func (s *Searcher) Stats() (nodes int64, ttUsed float64) {
	return s.nodes, s.tt.Used()
}

// deadlineExceeded is checked only in the move loop after a child recursion returns — never
// mid-make. This bounds cancellation latency to the time to search one subtree at the current
// ply, and never corrupts the board, since no suspension happens between make and unmake.
func (s *Searcher) deadlineExceeded() bool {
	return time.Now().UnixNano() > s.deadlineAt
}

func isMateScore(score int) bool {
	if score < 0 {
		score = -score
	}
	return score > mateThreshold
}

// adjustMateDistance shrinks a mate score's magnitude by one ply, so that mates found deeper in
// the tree (further from being delivered) score lower in magnitude than ones about to land.
func adjustMateDistance(score int) int {
	if !isMateScore(score) {
		return score
	}
	if score > 0 {
		return score - 1
	}
	return score + 1
}
