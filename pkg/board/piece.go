package board

// Piece is the unsigned magnitude of a board square's content: 1..6 for
// {king, queen, rook, knight, bishop, pawn}, 0 for empty. The board stores
// magnitude*color (see Color), so a Piece never carries a sign.
type Piece int8

const (
	NoPiece Piece = 0
	King    Piece = 1
	Queen   Piece = 2
	Rook    Piece = 3
	Knight  Piece = 4
	Bishop  Piece = 5
	Pawn    Piece = 6
)

const NumPieces = 7 // 0 (unused/empty) .. 6, kept dense so pieceType indexes trivially.

func (p Piece) IsValid() bool {
	return King <= p && p <= Pawn
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Pawn:
		return "p"
	default:
		return "?"
	}
}

// ParsePiece parses a FEN/SAN piece letter, case-insensitive, into a magnitude and color.
func ParsePiece(r byte) (Piece, Color, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'K':
		return King, color, true
	case 'Q':
		return Queen, color, true
	case 'R':
		return Rook, color, true
	case 'N':
		return Knight, color, true
	case 'B':
		return Bishop, color, true
	case 'P':
		return Pawn, color, true
	default:
		return NoPiece, 0, false
	}
}

// Letter renders the piece with the given color's case, FEN-style.
func (p Piece) Letter(c Color) byte {
	s := p.String()[0]
	if c == White && s >= 'a' && s <= 'z' {
		s -= 'a' - 'A'
	}
	return s
}
