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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	_, ok := tt.Probe(Key(12345), 0)
	assert.False(t, ok)
}

func TestStoreThenProbeRoundTrip(t *testing.T) {
	tt := NewTable(1)
	key := Key(0xABCD1234)
	move := NewMove(SqE2, SqE4)
	tt.Store(key, move, Value(150), 6, FlagExact, 0)

	e, ok := tt.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, move, e.BestMove())
	assert.Equal(t, Value(150), e.Score())
	assert.Equal(t, int8(6), e.Depth())
	assert.Equal(t, FlagExact, e.Flag())
}

// TestMateScorePlyAdjustment checks that a mate score stored at one ply and
// probed at a different ply is adjusted so it still reads as "mate in N
// from this node", per spec 4.4.
func TestMateScorePlyAdjustment(t *testing.T) {
	tt := NewTable(1)
	key := Key(777)
	mateScore := MateIn(3)
	tt.Store(key, MoveNone, mateScore, 4, FlagExact, 2)

	e, ok := tt.Probe(key, 2)
	assert.True(t, ok)
	assert.Equal(t, mateScore, e.Score())

	e2, ok := tt.Probe(key, 5)
	assert.True(t, ok)
	assert.NotEqual(t, mateScore, e2.Score())
	assert.True(t, e2.Score().IsMateScore())
}

func TestReplacementPolicyKeepsDeeperEntry(t *testing.T) {
	tt := NewTable(1)
	key := Key(99)
	tt.Store(key, NewMove(SqA2, SqA3), Value(10), 8, FlagExact, 0)
	tt.Store(key, NewMove(SqB2, SqB3), Value(20), 3, FlagExact, 0)

	e, ok := tt.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(10), e.Score(), "shallower store must not overwrite a deeper entry")
}

func TestNewSearchAllowsStaleGenerationOverwrite(t *testing.T) {
	tt := NewTable(1)
	key := Key(55)
	tt.Store(key, NewMove(SqA2, SqA3), Value(10), 8, FlagExact, 0)
	tt.NewSearch()
	tt.Store(key, NewMove(SqB2, SqB3), Value(20), 1, FlagExact, 0)

	e, ok := tt.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(20), e.Score(), "a new generation may overwrite even a shallower stale entry")
}

func TestClearResetsTableAndStats(t *testing.T) {
	tt := NewTable(1)
	tt.Store(Key(1), MoveNone, Value(1), 1, FlagExact, 0)
	tt.Clear()
	assert.Equal(t, Stats{}, tt.Stats)

	_, ok := tt.Probe(Key(1), 0)
	assert.False(t, ok)
}

func TestHashfullEmptyTableIsZero(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestZeroSizeTableIsSafeNoOp(t *testing.T) {
	tt := NewTable(0)
	tt.Store(Key(1), MoveNone, Value(1), 1, FlagExact, 0)
	_, ok := tt.Probe(Key(1), 0)
	assert.False(t, ok)
}
