package fen_test

import (
	"testing"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStartpos(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, "KQkq", pos.CastlingRights().String())

	piece, color, ok := pos.At(board.NewSquare(7, 4))
	require.True(t, ok)
	assert.Equal(t, board.King, piece)
	assert.Equal(t, board.White, color)
}

func TestEncodeRoundTrip(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	got := fen.Encode(pos, pos.SideToMove(), 0, 1)
	assert.Equal(t, fen.Startpos, got)
}

func TestDecodeKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, kiwipete)
	require.NoError(t, err)

	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, "KQkq", pos.CastlingRights().String())
	assert.Equal(t, kiwipete, fen.Encode(pos, pos.SideToMove(), 0, 1))
}

func TestDecodeInvalid(t *testing.T) {
	zt := board.NewZobristTable()

	_, err := fen.Decode(zt, "not-a-fen")
	assert.Error(t, err)

	_, err = fen.Decode(zt, "8/8/8/8/8/8/8/8 w KQkq - 0 1")
	assert.Error(t, err, "empty board has no kings")
}
