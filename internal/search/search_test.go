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

	"github.com/ASmolyar/chess-ai-sub001/internal/evaluator"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/transpositiontable"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

func newTestSearch() *Search {
	return NewSearch(transpositiontable.NewTable(1), evaluator.NewMaterialEvaluator())
}

// TestStartSearchFindsBackRankMateInOne checks spec testable property 7: a
// forced mate is reported with a score whose magnitude exceeds MateThreshold
// and whose sign favors the side delivering it.
func TestStartSearchFindsBackRankMateInOne(t *testing.T) {
	p, err := position.NewPositionFromFen("7k/6pp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	result := s.StartSearch(p, Limits{MaxDepth: 3})

	assert.Equal(t, types.NewMove(types.SqA1, types.SqA8), result.BestMove)
	assert.True(t, result.BestValue.IsMateScore(), "score %s should be a mate score", result.BestValue)
	assert.True(t, result.BestValue > 0, "mate should favor the side to move")
}

// TestStartSearchIsDeterministicForFixedDepth checks spec testable property
// 8: two independent Search instances searching the same position to the
// same fixed depth return identical best move and score.
func TestStartSearchIsDeterministicForFixedDepth(t *testing.T) {
	p1, err := position.NewPositionFromFen(position.StartFen)
	require.NoError(t, err)
	p2, err := position.NewPositionFromFen(position.StartFen)
	require.NoError(t, err)

	s1 := newTestSearch()
	s2 := newTestSearch()

	r1 := s1.StartSearch(p1, Limits{MaxDepth: 4})
	r2 := s2.StartSearch(p2, Limits{MaxDepth: 4})

	assert.Equal(t, r1.BestMove, r2.BestMove)
	assert.Equal(t, r1.BestValue, r2.BestValue)
}

// TestRepeatedSearchReusesTranspositionTable checks spec testable property 2
// (TT-backed cutoffs): re-running the same search on a table that already
// holds entries from a prior run of the same position must not change the
// reported best move, and must record at least one TT hit - proof the
// second run actually consulted the table rather than recomputing from
// scratch.
func TestRepeatedSearchReusesTranspositionTable(t *testing.T) {
	p, err := position.NewPositionFromFen(position.StartFen)
	require.NoError(t, err)

	s := newTestSearch()
	first := s.StartSearch(p, Limits{MaxDepth: 4})

	p2, err := position.NewPositionFromFen(position.StartFen)
	require.NoError(t, err)
	second := s.StartSearch(p2, Limits{MaxDepth: 4})

	assert.Equal(t, first.BestMove, second.BestMove)
	assert.Greater(t, s.Statistics().TTHits, uint64(0))
}

// TestNewGameClearsTranspositionAndHeuristics checks that NewGame resets the
// table, killer and history state a new game must not inherit stale data
// from the last one.
func TestNewGameClearsTranspositionAndHeuristics(t *testing.T) {
	p, err := position.NewPositionFromFen(position.StartFen)
	require.NoError(t, err)

	s := newTestSearch()
	s.StartSearch(p, Limits{MaxDepth: 4})
	assert.Greater(t, s.tt.Hashfull(), 0)

	s.NewGame()
	assert.Equal(t, 0, s.tt.Hashfull())
}

// TestDisablingSearchTechniquesStillFindsMate checks that turning off null
// move pruning, LMR and PVS - spec's pluggable-technique tunables - never
// costs correctness, only speed: the same forced mate must still be found.
func TestDisablingSearchTechniquesStillFindsMate(t *testing.T) {
	p, err := position.NewPositionFromFen("7k/6pp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	s.UseNullMove = false
	s.UseLMR = false
	s.UsePVS = false

	result := s.StartSearch(p, Limits{MaxDepth: 3})
	assert.Equal(t, types.NewMove(types.SqA1, types.SqA8), result.BestMove)
	assert.True(t, result.BestValue.IsMateScore())
}

// TestStartSearchOnStalemateReturnsDraw checks the terminal-node branch of
// negamax distinct from checkmate: no legal moves and not in check scores
// as a draw, not a mate.
func TestStartSearchOnStalemateReturnsDraw(t *testing.T) {
	p, err := position.NewPositionFromFen("k7/8/1Q6/8/3K4/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	result := s.StartSearch(p, Limits{MaxDepth: 2})

	assert.Equal(t, types.MoveNone, result.BestMove)
	assert.Equal(t, types.ValueDraw, result.BestValue)
}

func TestStopSearchIsIdempotentWhenNoSearchIsRunning(t *testing.T) {
	s := newTestSearch()
	assert.NotPanics(t, func() {
		s.StopSearch()
		s.StopSearch()
	})
}
