package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/bpowers/shadowcore/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSearchFromStartpos(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	e.SetSearchTime(100 * time.Millisecond)

	best, err := e.Search(ctx)
	require.NoError(t, err)
	assert.False(t, best.IsZero())
}

func TestEngineSetPositionAppliesMoves(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.SetPosition(ctx, "startpos", []string{"e2e4", "e7e5"}))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", e.Position())
}

func TestEngineSetPositionRejectsUnknownMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	err := e.SetPosition(ctx, "startpos", []string{"e2e5"})
	assert.Error(t, err)
}

func TestEngineNewGameResetsPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.SetPosition(ctx, "startpos", []string{"e2e4"}))
	e.NewGame(ctx)

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", e.Position())
}

func TestEngineUnderpromotion(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.SetPosition(ctx, "8/P6k/8/8/8/8/7K/8 w - - 0 1", []string{"a7a8n"}))
	assert.Equal(t, "N7/7k/8/8/8/8/7K/8 b - - 0 1", e.Position()) // underpromoted to a knight, not a queen
}
