// Package fen reads and writes positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bpowers/shadowcore/pkg/board"
)

// Startpos is the standard opening position in FEN.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a position. Half-move and full-move counters are accepted but
// not retained; callers that need them should parse the trailing fields separately.
func Decode(zt *board.ZobristTable, fen string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: need at least 4 fields", fen)
	}

	pieces, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}

	side, ok := board.ParseColor(parts[1][0])
	if !ok {
		return nil, fmt.Errorf("invalid FEN %q: bad side to move %q", fen, parts[1])
	}

	castling, err := decodeCastling(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}

	var ep board.Square
	epValid := false
	if parts[3] != "-" {
		ep, err = board.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad en passant field %q", fen, parts[3])
		}
		epValid = true
	}

	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad halfmove clock %q", fen, parts[4])
		}
	}
	if len(parts) >= 6 {
		if _, err := strconv.Atoi(parts[5]); err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad fullmove number %q", fen, parts[5])
		}
	}

	return board.NewPosition(zt, pieces, side, castling, ep, epValid)
}

func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, found %d", len(ranks))
	}

	var pieces []board.Placement
	for rank, row := range ranks {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, color, ok := board.ParsePiece(byte(c))
				if !ok {
					return nil, fmt.Errorf("invalid piece letter %q", c)
				}
				if file >= 8 {
					return nil, fmt.Errorf("rank %d overflows 8 files", rank)
				}
				pieces = append(pieces, board.Placement{
					Square: board.NewSquare(int8(rank), int8(file)),
					Color:  color,
					Piece:  piece,
				})
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %d has %d files, want 8", rank, file)
		}
	}
	return pieces, nil
}

func decodeCastling(field string) (board.CastlingRights, error) {
	var rights board.CastlingRights
	if field == "-" {
		return rights, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights |= board.WhiteKingside
		case 'Q':
			rights |= board.WhiteQueenside
		case 'k':
			rights |= board.BlackKingside
		case 'q':
			rights |= board.BlackQueenside
		default:
			return 0, fmt.Errorf("invalid castling letter %q", c)
		}
	}
	return rights, nil
}

// Encode renders a position as a FEN record. noprogress and fullmoves are the halfmove clock and
// fullmove number, which the position itself does not retain.
func Encode(pos *board.Position, side board.Color, noprogress, fullmoves int) string {
	var sb strings.Builder

	for rank := int8(0); rank < 8; rank++ {
		blanks := 0
		for file := int8(0); file < 8; file++ {
			piece, color, ok := pos.At(board.NewSquare(rank, file))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteByte(piece.Letter(color))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), side, pos.CastlingRights(), ep, noprogress, fullmoves)
}
