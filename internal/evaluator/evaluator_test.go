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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

func TestMaterialEvaluatorStartPositionIsZero(t *testing.T) {
	p := position.NewPosition()
	ev := NewMaterialEvaluator()
	assert.Equal(t, Value(0), ev.Evaluate(p))
}

func TestMaterialEvaluatorFavorsExtraQueen(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	ev := NewMaterialEvaluator()
	assert.Equal(t, ev.Values[Queen], ev.Evaluate(p))
}

// TestMaterialEvaluatorSymmetry checks spec TESTABLE PROPERTIES #9: scoring
// the same material balance from the other side's perspective negates.
func TestMaterialEvaluatorSymmetry(t *testing.T) {
	white, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	black, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	require.NoError(t, err)

	ev := NewMaterialEvaluator()
	assert.Equal(t, ev.Evaluate(white), -ev.Evaluate(black))
}

func TestParametricEvaluatorStartPositionIsSymmetric(t *testing.T) {
	p := position.NewPosition()
	ev := NewParametricEvaluator()
	assert.Equal(t, Value(0), ev.Evaluate(p))
}

func TestParametricEvaluatorBishopPairBonus(t *testing.T) {
	noBishops, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	bishopPair, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/2B1KB1R w K - 0 1")
	require.NoError(t, err)

	ev := NewParametricEvaluator()
	assert.Greater(t, ev.Evaluate(bishopPair), ev.Evaluate(noBishops))
}
