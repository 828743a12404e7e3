package search_test

import (
	"context"
	"testing"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStoreAndProbe(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTable(ctx, 1<<16)

	key := board.ZobristKey(0xdeadbeef)

	_, hit := tt.Probe(key)
	assert.False(t, hit)

	m := board.NewMove(board.NewSquare(6, 4), board.NewSquare(4, 4), board.PawnTwoMovesFlag, false)
	tt.Store(key, search.Exact, 5, 42, m)

	entry, hit := tt.Probe(key)
	require.True(t, hit)
	assert.Equal(t, search.Exact, entry.Flag)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, 42, entry.Value)
	assert.Equal(t, m, entry.Move)
}

func TestTableReplacementPrefersDeeperSameType(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTable(ctx, 1<<16)

	key := board.ZobristKey(7)
	m := board.NewMove(board.NewSquare(1, 0), board.NewSquare(0, 0), board.PromotionFlag, false)

	tt.Store(key, search.Exact, 4, 10, m)
	tt.Store(key, search.Exact, 2, 99, m) // shallower: must not replace
	entry, _ := tt.Probe(key)
	assert.Equal(t, 4, entry.Depth)
	assert.Equal(t, 10, entry.Value)

	tt.Store(key, search.Exact, 6, 100, m) // deeper: must replace
	entry, _ = tt.Probe(key)
	assert.Equal(t, 6, entry.Depth)
	assert.Equal(t, 100, entry.Value)
}

func TestTableReplacementMainSearchBeatsQuiescence(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTable(ctx, 1<<16)

	key := board.ZobristKey(1234)
	m := board.NewMove(board.NewSquare(0, 0), board.NewSquare(0, 1), board.NoFlag, false)

	tt.Store(key, search.QExact, 10, 5, m)
	tt.Store(key, search.Exact, 1, 6, m) // shallower, but main search beats quiescence

	entry, _ := tt.Probe(key)
	assert.Equal(t, search.Exact, entry.Flag)
	assert.Equal(t, 6, entry.Value)
}

func TestTableLookupRespectsBoundType(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTable(ctx, 1<<16)

	key := board.ZobristKey(99)
	m := board.NewMove(board.NewSquare(0, 0), board.NewSquare(0, 1), board.NoFlag, false)

	tt.Store(key, search.Alpha, 3, 50, m)

	_, hit := tt.Lookup(key, 3, 100, 200, false)
	assert.True(t, hit, "alpha bound <= caller's alpha should resolve")

	_, hit = tt.Lookup(key, 3, 10, 200, false)
	assert.False(t, hit, "alpha bound above caller's alpha should not resolve")

	_, hit = tt.Lookup(key, 5, 100, 200, false)
	assert.False(t, hit, "insufficient stored depth should not resolve")
}

func TestTableClearsWhenNearlyFull(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTable(ctx, 4*32) // tiny table: 4 entries

	for i := 0; i < 10; i++ {
		m := board.NewMove(board.NewSquare(0, 0), board.NewSquare(0, 1), board.NoFlag, false)
		tt.Store(board.ZobristKey(i), search.Exact, 1, i, m)
	}

	assert.Less(t, tt.Used(), 1.0)
}
