package search

import "github.com/bpowers/shadowcore/pkg/board"

// victimOrder ranks a piece's value for MVV-LVA purposes; indexed by board.Piece magnitude.
var victimOrder = [board.NumPieces]int{
	board.NoPiece: 0,
	board.King:    0,
	board.Queen:   9,
	board.Rook:    5,
	board.Knight:  3,
	board.Bishop:  3,
	board.Pawn:    1,
}

// orderingValue scores a move for search ordering: captures score by MVV-LVA (most valuable
// victim, least valuable attacker), promotions add the moving piece's order, everything else
// scores zero. victim/attacker are read from the board at scoring time, since Move itself does
// not encode the captured piece.
func orderingValue(pos *board.Position, m board.Move) int {
	if m.IsCapture() {
		attacker, _, _ := pos.At(m.From())
		var victim board.Piece
		if m.IsEnPassant() {
			victim = board.Pawn
		} else {
			victim, _, _ = pos.At(m.To())
		}
		return 10*victimOrder[victim] - victimOrder[attacker]
	}
	if m.IsPromotion() {
		attacker, _, _ := pos.At(m.From())
		return victimOrder[attacker]
	}
	return 0
}

// orderMoves sorts moves in descending ordering value in place. The quicksort itself allocates
// nothing; orderMoves allocates one slice of ordering values per call.
func orderMoves(pos *board.Position, moves []board.Move) {
	values := make([]int, len(moves))
	for i, m := range moves {
		values[i] = orderingValue(pos, m)
	}
	quicksortDescending(moves, values, 0, len(moves)-1)
}

func quicksortDescending(moves []board.Move, values []int, lo, hi int) {
	for lo < hi {
		p := partitionDescending(moves, values, lo, hi)
		// Recurse into the smaller side, loop on the larger, bounding stack depth to
		// O(log n) even in adversarial orderings.
		if p-lo < hi-p {
			quicksortDescending(moves, values, lo, p-1)
			lo = p + 1
		} else {
			quicksortDescending(moves, values, p+1, hi)
			hi = p - 1
		}
	}
}

func partitionDescending(moves []board.Move, values []int, lo, hi int) int {
	pivot := values[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if values[j] > pivot {
			values[i], values[j] = values[j], values[i]
			moves[i], moves[j] = moves[j], moves[i]
			i++
		}
	}
	values[i], values[hi] = values[hi], values[i]
	moves[i], moves[hi] = moves[hi], moves[i]
	return i
}
