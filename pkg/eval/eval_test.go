package eval_test

import (
	"testing"

	"github.com/bpowers/shadowcore/pkg/board"
	"github.com/bpowers/shadowcore/pkg/board/fen"
	"github.com/bpowers/shadowcore/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartposIsSymmetric(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := fen.Decode(zt, fen.Startpos)
	require.NoError(t, err)

	assert.Equal(t, 0, eval.Evaluate(pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	zt := board.NewZobristTable()

	// White is up a queen.
	pos, err := board.NewPosition(zt, []board.Placement{
		{Square: board.NewSquare(7, 4), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(0, 4), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(4, 4), Color: board.White, Piece: board.Queen},
	}, board.White, 0, board.Square{}, false)
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(pos), 800)
}

func TestEvaluateFlipsPerspectiveForBlackToMove(t *testing.T) {
	zt := board.NewZobristTable()
	pos, err := board.NewPosition(zt, []board.Placement{
		{Square: board.NewSquare(7, 4), Color: board.White, Piece: board.King},
		{Square: board.NewSquare(0, 4), Color: board.Black, Piece: board.King},
		{Square: board.NewSquare(4, 4), Color: board.White, Piece: board.Queen},
	}, board.Black, 0, board.Square{}, false)
	require.NoError(t, err)

	assert.Less(t, eval.Evaluate(pos), -800)
}
