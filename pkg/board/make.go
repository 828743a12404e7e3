package board

// Make applies m to the position, updating the board, side to move, king squares, castling
// rights, en-passant target, and zobrist key incrementally. The pre-move state word and zobrist
// key are pushed onto their history stacks so Unmake can restore them exactly.
//
// Invariant: Unmake(Make(m)) must reproduce the pre-make board, sideToMove, state word, zobrist
// key, and king squares bit-for-bit. Search correctness depends on this holding for every legal
// move.
func (p *Position) Make(m Move) {
	mover := p.sideToMove
	from, to := m.From(), m.To()

	p.history = append(p.history, p.current)
	p.zobristHistory = append(p.zobristHistory, p.zobristKey)

	piece, _, _ := p.At(from)

	rights := p.current.castlingRights()
	var capturedPiece Piece
	capturedColor := White

	if m.IsEnPassant() {
		capturedPiece, capturedColor = Pawn, mover.Opponent()
	} else if m.IsCapture() {
		capturedPiece, capturedColor, _ = p.At(to)
	}

	p.zobristXOR(mover, piece, from)
	p.clear(from)

	if m.IsCapture() && !m.IsEnPassant() {
		p.zobristXOR(capturedColor, capturedPiece, to)
	}

	destPiece := piece
	if m.IsPromotion() {
		destPiece = Queen
	}
	p.set(to, destPiece, mover)
	p.zobristXOR(mover, destPiece, to)

	if piece == King {
		if mover == White {
			rights = rights.Clear(WhiteKingside).Clear(WhiteQueenside)
			p.whiteKing = to
		} else {
			rights = rights.Clear(BlackKingside).Clear(BlackQueenside)
			p.blackKing = to
		}
	}
	if piece == Rook {
		rights = clearRookCorner(rights, mover, from)
	}
	// A rook captured on its original corner loses that side's rights too.
	if m.IsCapture() && capturedPiece == Rook {
		rights = clearRookCorner(rights, capturedColor, to)
	}

	var ep Square
	epValid := false

	switch m.Flag() {
	case CastlingFlag:
		rookFrom, rookTo := castlingRookSquares(mover, to)
		p.zobristXOR(mover, Rook, rookFrom)
		p.clear(rookFrom)
		p.set(rookTo, Rook, mover)
		p.zobristXOR(mover, Rook, rookTo)
	case PawnTwoMovesFlag:
		behind := int8(1)
		if mover == White {
			behind = -1
		}
		ep, epValid = NewSquare(to.Rank-behind, to.File), true
	case EnPassantFlag:
		capSq := enPassantCapturedSquare(mover, to)
		p.zobristXOR(capturedColor, capturedPiece, capSq)
		p.clear(capSq)
	}

	p.current = newStateWord(rights, ep, epValid, capturedPiece, capturedColor)

	p.sideToMove = mover.Opponent()
	p.zobristKey ^= p.zobrist.blackToMove
}

// Unmake reverses the most recent Make(m), popping the history stacks.
func (p *Position) Unmake(m Move) {
	mover := p.sideToMove.Opponent()
	from, to := m.From(), m.To()

	// The word Make(m) produced records what m captured; the popped word is the pre-move state.
	madeState := p.current
	prevState := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.zobristKey = p.zobristHistory[len(p.zobristHistory)-1]
	p.zobristHistory = p.zobristHistory[:len(p.zobristHistory)-1]

	// Figure out what piece is sitting at `to` right now to know what to move back.
	movedPiece, _, _ := p.At(to)
	if m.IsPromotion() {
		movedPiece = Pawn
	}

	p.clear(to)
	p.set(from, movedPiece, mover)

	if movedPiece == King {
		if mover == White {
			p.whiteKing = from
		} else {
			p.blackKing = from
		}
	}

	switch m.Flag() {
	case CastlingFlag:
		rookFrom, rookTo := castlingRookSquares(mover, to)
		p.clear(rookTo)
		p.set(rookFrom, Rook, mover)
	case EnPassantFlag:
		capSq := enPassantCapturedSquare(mover, to)
		p.set(capSq, madeState.capturedPiece(), madeState.capturedColor())
	}

	if m.IsCapture() && !m.IsEnPassant() {
		p.set(to, madeState.capturedPiece(), madeState.capturedColor())
	}

	p.current = prevState
	p.sideToMove = mover
}

func clearRookCorner(rights CastlingRights, color Color, sq Square) CastlingRights {
	homeRank := int8(7)
	if color == Black {
		homeRank = 0
	}
	if sq.Rank != homeRank {
		return rights
	}
	switch sq.File {
	case 0:
		if color == White {
			return rights.Clear(WhiteQueenside)
		}
		return rights.Clear(BlackQueenside)
	case 7:
		if color == White {
			return rights.Clear(WhiteKingside)
		}
		return rights.Clear(BlackKingside)
	}
	return rights
}

// castlingRookSquares returns the rook's corner and its post-castle square for the king's
// two-square destination `kingTo`.
func castlingRookSquares(mover Color, kingTo Square) (from, to Square) {
	rank := kingTo.Rank
	if kingTo.File == 6 {
		return NewSquare(rank, 7), NewSquare(rank, 5)
	}
	return NewSquare(rank, 0), NewSquare(rank, 3)
}

// enPassantCapturedSquare returns the square of the pawn captured en passant: one square behind
// the destination along the mover's travel direction.
func enPassantCapturedSquare(mover Color, to Square) Square {
	if mover == White {
		return NewSquare(to.Rank+1, to.File)
	}
	return NewSquare(to.Rank-1, to.File)
}
