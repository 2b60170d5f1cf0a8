/*
 * chess-ai-sub001 - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chess-ai-sub001 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

func TestStartFenRoundTrip(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.Fen())
}

func TestFenRoundTripArbitraryPosition(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	p, err := NewPositionFromFen(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.Fen())
}

func TestMalformedFenRejected(t *testing.T) {
	_, err := NewPositionFromFen("not a fen")
	assert.Error(t, err)
}

// TestMakeUnmakeRoundTrip checks spec TESTABLE PROPERTIES #3: after
// DoMove/UndoMove, the position is byte-for-byte the same FEN and zobrist
// key as before the move, for four different moves from the standard start.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := NewPosition()
	before := p.Fen()
	beforeKey := p.ZobristKey()

	moves := []Move{
		NewMove(SqE2, SqE4),
		NewMove(SqG1, SqF3),
		NewMove(SqB1, SqC3),
		NewMove(SqA2, SqA3),
	}
	for _, m := range moves {
		p.DoMove(m)
		p.UndoMove()
		assert.Equal(t, before, p.Fen(), "fen mismatch after do/undo of %s", m)
		assert.Equal(t, beforeKey, p.ZobristKey(), "key mismatch after do/undo of %s", m)
	}
}

// TestZobristConsistency checks spec TESTABLE PROPERTIES #4: the
// incrementally maintained key after a move matches the key recomputed from
// scratch on the resulting board.
func TestZobristConsistency(t *testing.T) {
	p := NewPosition()
	p.DoMove(NewMove(SqE2, SqE4))
	assert.Equal(t, p.computeKeyFromScratch(), p.ZobristKey())

	p.DoMove(NewMove(SqE7, SqE5))
	assert.Equal(t, p.computeKeyFromScratch(), p.ZobristKey())

	p.DoMove(NewMove(SqG1, SqF3))
	assert.Equal(t, p.computeKeyFromScratch(), p.ZobristKey())
}

func TestCastlingRightsUpdateOnRookAndKingMoves(t *testing.T) {
	p, err := NewPositionFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	p.DoMove(NewMove(SqA1, SqA2))
	assert.False(t, p.CastlingRights().Has(WhiteQueenside))
	assert.True(t, p.CastlingRights().Has(WhiteKingside))

	p.DoMove(NewMove(SqE8, SqE7))
	assert.False(t, p.CastlingRights().Has(BlackKingside))
	assert.False(t, p.CastlingRights().Has(BlackQueenside))
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	p, err := NewPositionFromFen("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsDraw())
}

func TestKingAndRookIsNotInsufficientMaterial(t *testing.T) {
	p, err := NewPositionFromFen("8/8/4k3/8/8/4K2R/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.IsDraw())
}

// TestRepetitionDetection checks spec TESTABLE PROPERTIES #6: shuffling
// knights back and forth to repeat a position is detected as a draw.
func TestRepetitionDetection(t *testing.T) {
	p := NewPosition()
	shuffle := []Move{
		NewMove(SqG1, SqF3),
		NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1),
		NewMove(SqF6, SqG8),
		NewMove(SqG1, SqF3),
		NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1),
		NewMove(SqF6, SqG8),
	}
	for _, m := range shuffle {
		p.DoMove(m)
	}
	assert.True(t, p.IsDraw())
	assert.GreaterOrEqual(t, p.CountRepetitions(), 2)
}

func TestHalfMoveClockDraw(t *testing.T) {
	p, err := NewPositionFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 99 50")
	require.NoError(t, err)
	p.DoMove(NewMove(SqE1, SqD1))
	assert.True(t, p.IsDraw())
}
