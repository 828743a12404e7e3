package perft_test

import (
	"testing"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/bpowers/shadowcore/pkg/perft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference leaf counts are the standard perft results published at
// https://www.chessprogramming.org/Perft_Results.

func TestPerftStartpos(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	want := []int64{20, 400, 8902, 197281}
	for i, w := range want {
		depth := i + 1
		c := perft.Count(pos, depth)
		assert.Equal(t, w, c.Leaves, "depth %v", depth)
	}
}

func TestPerftStartposDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}

	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	c := perft.Count(pos, 5)
	assert.Equal(t, int64(4865609), c.Leaves)
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, kiwipete)
	require.NoError(t, err)

	want := []int64{48, 2039, 97862}
	for i, w := range want {
		depth := i + 1
		c := perft.Count(pos, depth)
		assert.Equal(t, w, c.Leaves, "depth %v", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	const position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, position3)
	require.NoError(t, err)

	c1 := perft.Count(pos, 1)
	assert.Equal(t, int64(14), c1.Leaves)

	c4 := perft.Count(pos, 4)
	assert.Equal(t, int64(43238), c4.Leaves)
}
