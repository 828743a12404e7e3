package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/bpowers/shadowcore/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, "4k3/8/4K3/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)

	tt := search.NewTable(context.Background(), 1<<20)
	s := search.NewSearcher(tt)

	best, _ := s.IterativeDeepening(context.Background(), pos, 500*time.Millisecond)
	assert.Equal(t, "a1a8", best.String())
}

func TestStalemateRecognized(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, "7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.True(t, pos.Stalemate())
	assert.Empty(t, pos.GenerateMoves())
}

func TestIterativeDeepeningStopsAtDeadline(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	tt := search.NewTable(context.Background(), 1<<20)
	s := search.NewSearcher(tt)

	start := time.Now()
	best, _ := s.IterativeDeepening(context.Background(), pos, 100*time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, best.IsZero())
	assert.Less(t, elapsed, 2*time.Second)
}

func TestQuiescenceResolvesHangingCapture(t *testing.T) {
	zt := board.NewZobristTable()
	// White to move, can win the undefended black rook on d8 via a bishop capture along the
	// a5-d8 diagonal.
	pos, err := fen.Decode(zt, "3r1k2/8/8/B7/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	tt := search.NewTable(context.Background(), 1<<20)
	s := search.NewSearcher(tt)

	best, score := s.IterativeDeepening(context.Background(), pos, 300*time.Millisecond)
	assert.Equal(t, "a5d8", best.String())
	assert.Greater(t, score, 0)
}
