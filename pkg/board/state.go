package board

// StateWord is the 16-bit packed snapshot of everything a make/unmake pair must restore besides
// the board and king squares: castling rights, the en-passant target, and the piece captured by
// the move that produced this word. One word is pushed per make() and popped per unmake().
//
//	bits 0..3   castling rights {WK=1, WQ=2, BK=4, BQ=8}
//	bits 4..6   en-passant target rank (0..7); 0 when none
//	bits 7..9   en-passant target file (0..7)
//	bits 10..12 magnitude of last-captured piece (0..6)
//	bit  13     color of captured piece (1 = white)
//	bits 14..15 reserved
type StateWord uint16

const (
	stateCastlingMask  = 0xF
	stateEPRankShift   = 4
	stateEPFileShift   = 7
	state3BitMask      = 0x7
	stateCapturedShift = 10
	stateCapturedMask  = 0x7
	stateCapColorBit   = 1 << 13
)

func newStateWord(rights CastlingRights, ep Square, epValid bool, captured Piece, capColor Color) StateWord {
	var w StateWord
	w |= StateWord(rights) & stateCastlingMask
	if epValid {
		w |= StateWord(ep.Rank&state3BitMask) << stateEPRankShift
		w |= StateWord(ep.File&state3BitMask) << stateEPFileShift
	}
	w |= StateWord(captured&stateCapturedMask) << stateCapturedShift
	if capColor == White {
		w |= stateCapColorBit
	}
	return w
}

func (w StateWord) castlingRights() CastlingRights {
	return CastlingRights(w & stateCastlingMask)
}

// enPassant returns the en-passant target square and whether one is set. The all-zero encoding
// means "no en-passant", even though (0,0)=a8 is technically a valid square. a8 can never be a
// real en-passant target (those only occur on rank 2 or 5), so the overload never actually
// collides in practice.
func (w StateWord) enPassant() (Square, bool) {
	rank := int8(w>>stateEPRankShift) & state3BitMask
	file := int8(w>>stateEPFileShift) & state3BitMask
	if rank == 0 && file == 0 {
		return Square{}, false
	}
	return Square{Rank: rank, File: file}, true
}

func (w StateWord) capturedPiece() Piece {
	return Piece(w>>stateCapturedShift) & stateCapturedMask
}

func (w StateWord) capturedColor() Color {
	if w&stateCapColorBit != 0 {
		return White
	}
	return Black
}
