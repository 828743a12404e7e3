package search

import (
	"context"
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/seekerror/logw"
)

// IterativeDeepening searches pos for up to timeLimit, deepening one ply at a time, and returns
// the best move found along with its score. The scheduling model is single-threaded and
// synchronous: this call blocks the caller for up to timeLimit; there is no cancellation other
// than the deadline itself (see deadlineExceeded).
func (s *Searcher) IterativeDeepening(ctx context.Context, pos *board.Position, timeLimit time.Duration) (board.Move, int) {
	s.nodes = 0
	s.brokeEarly = false
	s.deadlineAt = time.Now().Add(timeLimit).UnixNano()
	s.hasDeadline = true

	rootMoves := pos.GenerateMoves()
	var bestMove board.Move
	if len(rootMoves) > 0 {
		bestMove = rootMoves[0]
	}
	bestScore := 0

	for depth := 1; depth <= maxDepth; depth++ {
		s.bestMoveThisIteration = bestMove
		s.bestScoreThisIteration = bestScore

		s.Negamax(pos, depth, depth, -infinity+1, infinity)

		if s.brokeEarly {
			break
		}

		bestMove = s.bestMoveThisIteration
		bestScore = s.bestScoreThisIteration

		logw.Debugf(ctx, "depth=%v score=%v move=%v nodes=%v", depth, bestScore, bestMove, s.nodes)

		if isMateScore(s.bestScoreThisIteration) {
			break
		}
	}

	return bestMove, bestScore
}
