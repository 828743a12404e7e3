// Package eval implements static position evaluation: material, tapered piece-square tables,
// and pawn-structure terms, blended by a middlegame/endgame phase.
package eval

import "github.com/bpowers/shadowcore/pkg/board"

// mgValue and egValue are indexed by board.Piece magnitude (1..6); index 0 is unused.
var mgValue = [board.NumPieces]int{
	board.NoPiece: 0,
	board.King:    0,
	board.Queen:   1025,
	board.Rook:    477,
	board.Knight:  337,
	board.Bishop:  365,
	board.Pawn:    82,
}

var egValue = [board.NumPieces]int{
	board.NoPiece: 0,
	board.King:    0,
	board.Queen:   936,
	board.Rook:    512,
	board.Knight:  281,
	board.Bishop:  297,
	board.Pawn:    94,
}

// phaseWeight contributes to the running game-phase counter; a fresh board totals 24
// (2 queens*4 + 4 rooks*2 + 4 bishops*1 + 4 knights*1).
var phaseWeight = [board.NumPieces]int{
	board.NoPiece: 0,
	board.King:    0,
	board.Queen:   4,
	board.Rook:    2,
	board.Knight:  1,
	board.Bishop:  1,
	board.Pawn:    0,
}

// maxPhase is the phase total for the starting material; gamePhase is clamped to it so a
// position with more non-pawn material than the start (possible after promotions) doesn't
// overflow the middlegame/endgame taper.
const maxPhase = 24
