package board

import "fmt"

// Placement is a single piece placed on a square, used to build a Position from scratch.
type Placement struct {
	Square Square
	Color  Color
	Piece  Piece
}

// Position is the mailbox game state: an 8x8 signed board plus everything needed to reverse a
// move exactly. It is the "C4" component: move generation, legality filtering, and make/unmake
// all hang off this type.
//
// History stacks grow by one entry per Make and are popped by the matching Unmake, so a search
// leaves them at the length they had before it started.
type Position struct {
	board [8][8]int8

	sideToMove Color
	whiteKing  Square
	blackKing  Square

	current StateWord
	history []StateWord

	zobristKey     ZobristKey
	zobristHistory []ZobristKey

	// moveBuf[0] is White's last-generated pseudo-legal buffer, moveBuf[1] is Black's.
	// Overwritten on every GenerateMoves call for that side; callers must consume before the
	// next generation at the same ply.
	moveBuf [2][]Move

	zobrist *ZobristTable
}

// NewPosition builds a position from an explicit piece list. zt is a non-owning reference to the
// shared zobrist key table (owned by the engine, which outlives every Position built against it).
func NewPosition(zt *ZobristTable, pieces []Placement, side Color, castling CastlingRights, ep Square, epValid bool) (*Position, error) {
	p := &Position{sideToMove: side, zobrist: zt}

	whiteKings, blackKings := 0, 0
	for _, pl := range pieces {
		if !pl.Square.IsValid() {
			return nil, fmt.Errorf("invalid placement square: %v", pl.Square)
		}
		if p.board[pl.Square.Rank][pl.Square.File] != 0 {
			return nil, fmt.Errorf("duplicate placement at %v", pl.Square)
		}
		p.board[pl.Square.Rank][pl.Square.File] = int8(pl.Piece) * int8(pl.Color)
		if pl.Piece == King {
			if pl.Color == White {
				p.whiteKing = pl.Square
				whiteKings++
			} else {
				p.blackKing = pl.Square
				blackKings++
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return nil, fmt.Errorf("position must have exactly one king per side")
	}

	p.current = newStateWord(castling, ep, epValid, NoPiece, White)
	p.zobristKey = zt.ComputeFull(&p.board, side)
	return p, nil
}

// NewStandardPosition builds the standard chess opening position.
func NewStandardPosition(zt *ZobristTable) *Position {
	pieces := []Placement{
		{NewSquare(0, 0), Black, Rook}, {NewSquare(0, 1), Black, Knight}, {NewSquare(0, 2), Black, Bishop}, {NewSquare(0, 3), Black, Queen},
		{NewSquare(0, 4), Black, King}, {NewSquare(0, 5), Black, Bishop}, {NewSquare(0, 6), Black, Knight}, {NewSquare(0, 7), Black, Rook},
		{NewSquare(7, 0), White, Rook}, {NewSquare(7, 1), White, Knight}, {NewSquare(7, 2), White, Bishop}, {NewSquare(7, 3), White, Queen},
		{NewSquare(7, 4), White, King}, {NewSquare(7, 5), White, Bishop}, {NewSquare(7, 6), White, Knight}, {NewSquare(7, 7), White, Rook},
	}
	for f := int8(0); f < 8; f++ {
		pieces = append(pieces, Placement{NewSquare(1, f), Black, Pawn}, Placement{NewSquare(6, f), White, Pawn})
	}
	p, err := NewPosition(zt, pieces, White, allCastlingRights, Square{}, false)
	if err != nil {
		// The hardcoded standard position is always well-formed.
		panic(fmt.Sprintf("standard position construction failed: %v", err))
	}
	return p
}

func (p *Position) SideToMove() Color {
	return p.sideToMove
}

func (p *Position) ZobristKey() ZobristKey {
	return p.zobristKey
}

func (p *Position) CastlingRights() CastlingRights {
	return p.current.castlingRights()
}

func (p *Position) EnPassant() (Square, bool) {
	return p.current.enPassant()
}

func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.whiteKing
	}
	return p.blackKing
}

// At returns the piece magnitude and color occupying sq, or (NoPiece, White, false) if empty.
func (p *Position) At(sq Square) (Piece, Color, bool) {
	v := p.board[sq.Rank][sq.File]
	if v == 0 {
		return NoPiece, White, false
	}
	if v > 0 {
		return Piece(v), White, true
	}
	return Piece(-v), Black, true
}

// Raw returns the signed mailbox value at sq: magnitude*color, 0 if empty.
func (p *Position) Raw(sq Square) int8 {
	return p.board[sq.Rank][sq.File]
}

func (p *Position) set(sq Square, piece Piece, c Color) {
	p.board[sq.Rank][sq.File] = int8(piece) * int8(c)
}

func (p *Position) clear(sq Square) {
	p.board[sq.Rank][sq.File] = 0
}

func (p *Position) zobristXOR(c Color, piece Piece, sq Square) {
	p.zobristKey ^= p.zobrist.pieceKey(c, piece, sq)
}

// OverwritePiece replaces the occupant of sq with piece/color, keeping the zobrist key in sync
// with the new occupant; it touches no other game state. It exists solely so a host can install a
// non-queen promotion piece after Make has already applied the default queen promotion (the
// move generator only ever produces queen promotions); it must never be called mid-search.
func (p *Position) OverwritePiece(sq Square, piece Piece, color Color) {
	if old, oldColor, ok := p.At(sq); ok {
		p.zobristXOR(oldColor, old, sq)
	}
	p.set(sq, piece, color)
	p.zobristXOR(color, piece, sq)
}
