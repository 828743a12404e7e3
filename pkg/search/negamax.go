package search

import "github.com/bpowers/shadowcore/pkg/board"

// Negamax searches pos to plyRemaining and returns a score from the side-to-move's perspective.
// rootDepth is the depth the current iterative-deepening iteration started at; plyFromRoot =
// rootDepth - plyRemaining identifies how deep into the tree this call is.
//
// Time is checked only in the move loop, after a child call returns — never mid-make. A timeout
// causes this node (and its ancestors, transitively) to discard its result; the previous
// iteration's bestMove remains the answer.
func (s *Searcher) Negamax(pos *board.Position, plyRemaining, rootDepth, alpha, beta int) int {
	if plyRemaining == 0 {
		return s.Quiescence(pos, QMaxDepth, alpha, beta)
	}

	s.nodes++

	key := pos.ZobristKey()
	if value, hit := s.tt.Lookup(key, plyRemaining, alpha, beta, false); hit {
		if rootDepth == plyRemaining {
			if entry, ok := s.tt.Probe(key); ok && !(entry.Flag.IsQuiescence() && isMateScore(entry.Value)) {
				s.bestMoveThisIteration = entry.Move
				s.bestScoreThisIteration = value
			}
		}
		return value
	}

	// GenerateMoves returns pos's shared per-side buffer, which the recursive calls below will
	// overwrite once they reach the same side to move again; copy it out before descending.
	moves := append([]board.Move(nil), pos.GenerateMoves()...)
	orderMoves(pos, moves)

	if len(moves) == 0 {
		if pos.InCheck() {
			return mateScore
		}
		return 0
	}

	bestFlag := Alpha
	bestMove := moves[0]

	for _, m := range moves {
		pos.Make(m)
		score := -s.Negamax(pos, plyRemaining-1, rootDepth, -beta, -alpha)
		pos.Unmake(m)

		if s.hasDeadline && s.deadlineExceeded() && rootDepth > s.minimumDepth {
			s.brokeEarly = true
			return 0
		}

		if score >= beta {
			s.tt.Store(key, Beta, plyRemaining, beta, m)
			return beta
		}
		if score > alpha {
			alpha = score
			bestFlag = Exact
			bestMove = m
			if rootDepth == plyRemaining {
				s.bestMoveThisIteration = m
				s.bestScoreThisIteration = score
			}
		}
	}

	alpha = adjustMateDistance(alpha)
	s.tt.Store(key, bestFlag, plyRemaining, alpha, bestMove)
	return alpha
}
