package eval

import "github.com/bpowers/shadowcore/pkg/board"

// Evaluate returns a static score for pos in centipawn-like units, from the mover's perspective:
// positive means good for the side to move. It blends material, tapered piece-square tables,
// and pawn-structure terms.
func Evaluate(pos *board.Position) int {
	mg, eg := 0, 0
	phase := 0
	pf := newPawnFiles()

	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			sq := board.NewSquare(rank, file)
			piece, color, ok := pos.At(sq)
			if !ok {
				continue
			}

			sign := 1
			white := color == board.White
			if !white {
				sign = -1
			}

			mg += sign * mgValue[piece]
			eg += sign * egValue[piece]

			pstMG := pstValue(&mgPST, int(piece), sq.Index64(), white)
			pstEG := pstValue(&egPST, int(piece), sq.Index64(), white)
			mg += sign * pstMG
			eg += sign * pstEG

			phase += phaseWeight[piece]

			if piece == board.Pawn {
				pf.record(int(file), int(rank), white)
			}
		}
	}

	if phase > maxPhase {
		phase = maxPhase
	}
	mgPhase := phase
	egPhase := maxPhase - mgPhase

	tapered := (mg*mgPhase + eg*egPhase) / maxPhase
	tapered += pawnStructureScore(pf)

	if pos.SideToMove() == board.White {
		return tapered
	}
	return -tapered
}
