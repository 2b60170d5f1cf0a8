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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// TestSeeFreeCaptureIsJustThePieceValue checks spec testable property 5's
// simplest worked SEE example: capturing an undefended pawn gains exactly
// its value, nothing more, nothing less.
func TestSeeFreeCaptureIsJustThePieceValue(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE4, types.SqD5)
	assert.Equal(t, types.Value(100), see(p, m))
	assert.True(t, SeeGe(p, m, 100))
	assert.False(t, SeeGe(p, m, 101))
}

// TestSeeLosingExchangeIsNegative checks the textbook losing-exchange case:
// a rook capturing a pawn that is defended by a pawn nets the value of the
// pawn won minus the rook lost to recapture.
func TestSeeLosingExchangeIsNegative(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/3p4/4p3/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE1, types.SqE5)
	assert.Equal(t, types.Value(100-500), see(p, m))
	assert.False(t, SeeGe(p, m, 0))
	assert.True(t, SeeGe(p, m, 100-500))
	assert.False(t, SeeGe(p, m, 100-500+1))
}

// TestSeeEvenPawnTradeWithKnightRecapture checks a balanced multi-ply
// exchange: a pawn takes a pawn defended by a knight. The capturing pawn is
// itself recaptured by the knight, so the net material swing is zero - the
// captured pawn against the capturing pawn - even though the knight itself
// is never captured.
func TestSeeEvenPawnTradeWithKnightRecapture(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/1n6/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := types.NewMove(types.SqE4, types.SqD5)
	assert.Equal(t, types.Value(0), see(p, m))
	assert.True(t, SeeGe(p, m, 0))
	assert.False(t, SeeGe(p, m, 1))
}

func TestSeeEnPassantIsThePawnValue(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	m := types.NewTypedMove(types.SqE5, types.SqD6, types.EnPassant)
	assert.Equal(t, types.Value(100), see(p, m))
	assert.True(t, SeeGe(p, m, 100))
}

func TestSeeDoesNotMutatePosition(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/3p4/4p3/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)
	before := p.Fen()

	see(p, types.NewMove(types.SqE1, types.SqE5))

	assert.Equal(t, before, p.Fen())
}
