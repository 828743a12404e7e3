package search

import (
	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/eval"
)

// Quiescence extends the search along captures only, to avoid misjudging positions where a
// capture is about to happen right past the main search's horizon.
func (s *Searcher) Quiescence(pos *board.Position, plyRemaining, alpha, beta int) int {
	s.nodes++

	standPat := eval.Evaluate(pos)
	if plyRemaining == 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	key := pos.ZobristKey()
	if value, hit := s.tt.Lookup(key, plyRemaining, alpha, beta, true); hit {
		return value
	}

	// Copy out of pos's shared per-side buffer before descending: the recursive Quiescence call
	// below regenerates moves for the same side two plies down and would otherwise overwrite
	// entries this loop has not read yet.
	moves := append([]board.Move(nil), pos.GenerateMoves()...)
	orderMoves(pos, moves)

	if len(moves) == 0 {
		if pos.InCheck() {
			return mateScore
		}
		return 0
	}

	bestFlag := QAlpha
	bestMove := board.Move(0)

	for _, m := range moves {
		if !m.IsCapture() {
			continue
		}

		pos.Make(m)
		score := -s.Quiescence(pos, plyRemaining-1, -beta, -alpha)
		pos.Unmake(m)

		if score >= beta {
			s.tt.Store(key, QBeta, plyRemaining, beta, m)
			return beta
		}
		if score > alpha {
			alpha = score
			bestFlag = QExact
			bestMove = m
		}
	}

	alpha = adjustMateDistance(alpha)
	s.tt.Store(key, bestFlag, plyRemaining, alpha, bestMove)
	return alpha
}
