package board_test

import (
	"testing"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardPosition(t *testing.T) {
	zt := board.NewZobristTable()
	pos := board.NewStandardPosition(zt)

	assert.Equal(t, board.White, pos.SideToMove())
	assert.False(t, pos.InCheck())

	piece, color, ok := pos.At(board.NewSquare(7, 4))
	require.True(t, ok)
	assert.Equal(t, board.King, piece)
	assert.Equal(t, board.White, color)

	_, _, ok = pos.At(board.NewSquare(4, 4))
	assert.False(t, ok)

	assert.Equal(t, 20, len(pos.GenerateMoves()))
}

func TestMakeUnmakeRestoresZobristAndBoard(t *testing.T) {
	zt := board.NewZobristTable()
	pos := board.NewStandardPosition(zt)

	before := pos.ZobristKey()
	var snapshot [8][8]int8
	for r := int8(0); r < 8; r++ {
		for f := int8(0); f < 8; f++ {
			snapshot[r][f] = pos.Raw(board.NewSquare(r, f))
		}
	}

	for _, m := range pos.GenerateMoves() {
		pos.Make(m)
		pos.Unmake(m)

		assert.Equal(t, before, pos.ZobristKey(), "zobrist key did not restore for %v", m)
		for r := int8(0); r < 8; r++ {
			for f := int8(0); f < 8; f++ {
				assert.Equal(t, snapshot[r][f], pos.Raw(board.NewSquare(r, f)), "square %v,%v did not restore for %v", r, f, m)
			}
		}
	}
}

func TestZobristIncrementalMatchesFullRecompute(t *testing.T) {
	zt := board.NewZobristTable()
	pos := board.NewStandardPosition(zt)

	m, ok := pos.FindMove(board.NewSquare(6, 4), board.NewSquare(4, 4)) // e2e4
	require.True(t, ok)

	pos.Make(m)

	var raw [8][8]int8
	for r := int8(0); r < 8; r++ {
		for f := int8(0); f < 8; f++ {
			raw[r][f] = pos.Raw(board.NewSquare(r, f))
		}
	}
	recomputed := zt.ComputeFull(&raw, pos.SideToMove())

	assert.Equal(t, recomputed, pos.ZobristKey())
}

func TestFindMoveMissingReturnsFalse(t *testing.T) {
	zt := board.NewZobristTable()
	pos := board.NewStandardPosition(zt)

	m, ok := pos.FindMove(board.NewSquare(7, 4), board.NewSquare(0, 4)) // king can't reach e8
	assert.False(t, ok)
	assert.True(t, m.IsZero())
}

func TestCastlingRightsClearOnKingMove(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := board.NewPosition(zt, []board.Placement{
		{Square: board.NewSquare(7, 4), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(7, 0), Color: board.White, Piece: board.Rook},
		{Square: board.NewSquare(7, 7), Color: board.White, Piece: board.Rook},
		{Square: board.NewSquare(0, 4), Color: board.Black, Piece: board.King},
	}, board.White, board.WhiteKingside|board.WhiteQueenside, board.Square{}, false)
	require.NoError(t, err)

	require.True(t, pos.CastlingRights().Has(board.WhiteKingside))
	require.True(t, pos.CastlingRights().Has(board.WhiteQueenside))

	m, ok := pos.FindMove(board.NewSquare(7, 4), board.NewSquare(7, 3)) // Ke1-d1
	require.True(t, ok)
	pos.Make(m)

	assert.False(t, pos.CastlingRights().Has(board.WhiteKingside))
	assert.False(t, pos.CastlingRights().Has(board.WhiteQueenside))
}

func TestEnPassantCapture(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := board.NewPosition(zt, []board.Placement{
		{Square: board.NewSquare(7, 4), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(0, 4), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(3, 4), Color: board.White, Piece: board.Pawn}, // e5
		{Square: board.NewSquare(1, 3), Color: board.Black, Piece: board.Pawn}, // d7
	}, board.Black, 0, board.Square{}, false)
	require.NoError(t, err)

	// d7-d5, creating an en-passant opportunity for the White e5 pawn.
	m, ok := pos.FindMove(board.NewSquare(1, 3), board.NewSquare(3, 3))
	require.True(t, ok)
	require.True(t, m.IsPawnTwoMoves())
	pos.Make(m)

	ep, epOK := pos.EnPassant()
	require.True(t, epOK)
	assert.Equal(t, board.NewSquare(2, 3), ep)

	capture, ok := pos.FindMove(board.NewSquare(3, 4), board.NewSquare(2, 3))
	require.True(t, ok)
	assert.True(t, capture.IsEnPassant())

	pos.Make(capture)
	_, _, occupied := pos.At(board.NewSquare(3, 3))
	assert.False(t, occupied, "captured pawn should be removed")

	pos.Unmake(capture)
	piece, color, ok := pos.At(board.NewSquare(3, 3))
	require.True(t, ok)
	assert.Equal(t, board.Pawn, piece)
	assert.Equal(t, board.Black, color)
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := board.NewPosition(zt, []board.Placement{
		{Square: board.NewSquare(7, 4), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(0, 4), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(1, 0), Color: board.White, Piece: board.Pawn}, // a7
	}, board.White, 0, board.Square{}, false)
	require.NoError(t, err)

	m, ok := pos.FindMove(board.NewSquare(1, 0), board.NewSquare(0, 0))
	require.True(t, ok)
	require.True(t, m.IsPromotion())

	pos.Make(m)
	piece, color, ok := pos.At(board.NewSquare(0, 0))
	require.True(t, ok)
	assert.Equal(t, board.Queen, piece)
	assert.Equal(t, board.White, color)

	pos.OverwritePiece(board.NewSquare(0, 0), board.Knight, board.White)
	piece, _, ok = pos.At(board.NewSquare(0, 0))
	require.True(t, ok)
	assert.Equal(t, board.Knight, piece)
}
