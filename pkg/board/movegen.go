package board

var knightOffsets = [8][2]int8{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int8{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var bishopDirs = [4][2]int8{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookDirs = [4][2]int8{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var queenDirs = [8][2]int8{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// GenerateMoves produces the legal moves for the side to move, storing them in that side's move
// buffer (overwriting whatever was generated for that side last). Legality is checked
// move-by-move at generation time via the make/test-attacked/unmake approach in isLegal.
func (p *Position) GenerateMoves() []Move {
	side := p.sideToMove
	buf := p.moveBuf[colorIndex(side)][:0]

	buf = p.generatePawnMoves(buf, side)
	buf = p.generateKnightMoves(buf, side)
	buf = p.generateKingMoves(buf, side)
	buf = p.generateSlidingMoves(buf, side, Bishop, bishopDirs[:])
	buf = p.generateSlidingMoves(buf, side, Rook, rookDirs[:])
	buf = p.generateSlidingMoves(buf, side, Queen, queenDirs[:])

	p.moveBuf[colorIndex(side)] = buf
	return buf
}

func (p *Position) appendIfLegal(buf []Move, m Move) []Move {
	if p.isLegal(m) {
		return append(buf, m)
	}
	return buf
}

func (p *Position) generatePawnMoves(buf []Move, side Color) []Move {
	forward := int8(-1) // White advances toward rank 0.
	startRank := int8(6)
	lastRank := int8(0)
	epTargetRank := int8(2)
	if side == Black {
		forward = 1
		startRank = 1
		lastRank = 7
		epTargetRank = 5
	}

	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			from := NewSquare(rank, file)
			piece, color, ok := p.At(from)
			if !ok || piece != Pawn || color != side {
				continue
			}

			one := NewSquare(rank+forward, file)
			if one.IsValid() {
				if _, _, occupied := p.At(one); !occupied {
					flag := NoFlag
					if one.Rank == lastRank {
						flag = PromotionFlag
					}
					buf = p.appendIfLegal(buf, NewMove(from, one, flag, false))

					if rank == startRank {
						two := NewSquare(rank+2*forward, file)
						if _, _, occ2 := p.At(two); !occ2 {
							buf = p.appendIfLegal(buf, NewMove(from, two, PawnTwoMovesFlag, false))
						}
					}
				}
			}

			for _, df := range [2]int8{-1, 1} {
				dest := NewSquare(rank+forward, file+df)
				if !dest.IsValid() {
					continue
				}
				if dp, dc, occupied := p.At(dest); occupied && dc != side {
					_ = dp
					flag := NoFlag
					if dest.Rank == lastRank {
						flag = PromotionFlag
					}
					buf = p.appendIfLegal(buf, NewMove(from, dest, flag, true))
					continue
				}
				if ep, epOK := p.EnPassant(); epOK && ep == dest && dest.Rank == epTargetRank {
					buf = p.appendIfLegal(buf, NewMove(from, dest, EnPassantFlag, true))
				}
			}
		}
	}
	return buf
}

func (p *Position) generateKnightMoves(buf []Move, side Color) []Move {
	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			from := NewSquare(rank, file)
			piece, color, ok := p.At(from)
			if !ok || piece != Knight || color != side {
				continue
			}
			for _, o := range knightOffsets {
				to := NewSquare(rank+o[0], file+o[1])
				if !to.IsValid() {
					continue
				}
				_, dc, occupied := p.At(to)
				if occupied && dc == side {
					continue
				}
				buf = p.appendIfLegal(buf, NewMove(from, to, NoFlag, occupied))
			}
		}
	}
	return buf
}

func (p *Position) generateSlidingMoves(buf []Move, side Color, piece Piece, dirs [][2]int8) []Move {
	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			from := NewSquare(rank, file)
			pc, color, ok := p.At(from)
			if !ok || pc != piece || color != side {
				continue
			}
			for _, d := range dirs {
				to := NewSquare(rank+d[0], file+d[1])
				for to.IsValid() {
					_, dc, occupied := p.At(to)
					if occupied {
						if dc != side {
							buf = p.appendIfLegal(buf, NewMove(from, to, NoFlag, true))
						}
						break
					}
					buf = p.appendIfLegal(buf, NewMove(from, to, NoFlag, false))
					to = NewSquare(to.Rank+d[0], to.File+d[1])
				}
			}
		}
	}
	return buf
}

func (p *Position) generateKingMoves(buf []Move, side Color) []Move {
	from := p.KingSquare(side)
	for _, o := range kingOffsets {
		to := NewSquare(from.Rank+o[0], from.File+o[1])
		if !to.IsValid() {
			continue
		}
		_, dc, occupied := p.At(to)
		if occupied && dc == side {
			continue
		}
		buf = p.appendIfLegal(buf, NewMove(from, to, NoFlag, occupied))
	}

	if p.isAttacked(from, side) {
		return buf
	}

	rank := from.Rank
	kingside, queenside := WhiteKingside, WhiteQueenside
	if side == Black {
		kingside, queenside = BlackKingside, BlackQueenside
	}
	rights := p.CastlingRights()

	if rights.Has(kingside) {
		f, g, h := NewSquare(rank, 5), NewSquare(rank, 6), NewSquare(rank, 7)
		_, _, fOcc := p.At(f)
		_, _, gOcc := p.At(g)
		rp, rc, rOK := p.At(h)
		if !fOcc && !gOcc && rOK && rp == Rook && rc == side && !p.isAttacked(f, side) {
			buf = p.appendIfLegal(buf, NewMove(from, g, CastlingFlag, false))
		}
	}
	if rights.Has(queenside) {
		b, c, d, a := NewSquare(rank, 1), NewSquare(rank, 2), NewSquare(rank, 3), NewSquare(rank, 0)
		_, _, bOcc := p.At(b)
		_, _, cOcc := p.At(c)
		_, _, dOcc := p.At(d)
		rp, rc, rOK := p.At(a)
		if !bOcc && !cOcc && !dOcc && rOK && rp == Rook && rc == side && !p.isAttacked(d, side) {
			buf = p.appendIfLegal(buf, NewMove(from, c, CastlingFlag, false))
		}
	}
	return buf
}

// FindMove returns the legal move matching the given from/to squares for the side to move.
// Returns the zero move and false if no legal move matches.
func (p *Position) FindMove(from, to Square) (Move, bool) {
	for _, m := range p.GenerateMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return 0, false
}

// isLegal makes m, checks whether the mover's king is attacked, and unmakes. Performance relies
// on make/unmake being cheap; this is the brute-force "simulate and check" approach.
func (p *Position) isLegal(m Move) bool {
	side := p.sideToMove
	p.Make(m)
	king := p.KingSquare(side)
	attacked := p.isAttacked(king, side)
	p.Unmake(m)
	return !attacked
}

// isAttacked reports whether sq is attacked by any piece of defenderSide's opponent.
func (p *Position) isAttacked(sq Square, defenderSide Color) bool {
	attacker := defenderSide.Opponent()

	for _, o := range knightOffsets {
		at := NewSquare(sq.Rank+o[0], sq.File+o[1])
		if !at.IsValid() {
			continue
		}
		if piece, color, ok := p.At(at); ok && piece == Knight && color == attacker {
			return true
		}
	}

	for _, d := range rookDirs {
		at := NewSquare(sq.Rank+d[0], sq.File+d[1])
		for at.IsValid() {
			piece, color, ok := p.At(at)
			if !ok {
				at = NewSquare(at.Rank+d[0], at.File+d[1])
				continue
			}
			if color == attacker && (piece == Rook || piece == Queen) {
				return true
			}
			break
		}
	}

	for _, d := range bishopDirs {
		at := NewSquare(sq.Rank+d[0], sq.File+d[1])
		for at.IsValid() {
			piece, color, ok := p.At(at)
			if !ok {
				at = NewSquare(at.Rank+d[0], at.File+d[1])
				continue
			}
			if color == attacker && (piece == Bishop || piece == Queen) {
				return true
			}
			break
		}
	}

	for _, o := range kingOffsets {
		at := NewSquare(sq.Rank+o[0], sq.File+o[1])
		if !at.IsValid() {
			continue
		}
		if piece, color, ok := p.At(at); ok && piece == King && color == attacker {
			return true
		}
	}

	// Forward direction is relative to the attacking pawn's travel: White advances toward
	// rank 0, Black toward rank 7 (see generatePawnMoves).
	attackerForward := int8(-1)
	if attacker == Black {
		attackerForward = 1
	}
	for _, df := range [2]int8{-1, 1} {
		at := NewSquare(sq.Rank-attackerForward, sq.File+df)
		if !at.IsValid() {
			continue
		}
		if piece, color, ok := p.At(at); ok && piece == Pawn && color == attacker {
			return true
		}
	}

	return false
}
