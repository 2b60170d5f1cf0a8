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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// perft counts the leaf nodes of the legal move tree rooted at p to the
// given depth, mutating p with DoMove/UndoMove rather than cloning.
func perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var ml types.MoveList
	GenerateLegal(p, All, &ml)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		nodes += perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// TestStandardPerft checks spec TESTABLE PROPERTIES #2: from the standard
// start, perft(1..5) == 20, 400, 8902, 197281, 4865609 - literal expected
// node counts (https://www.chessprogramming.org/Perft_Results).
func TestStandardPerft(t *testing.T) {
	expected := []uint64{20, 400, 8_902, 197_281, 4_865_609}
	p := position.NewPosition()
	for depth := 1; depth <= len(expected); depth++ {
		assert.Equal(t, expected[depth-1], perft(p, depth), "perft(%d)", depth)
	}
}

// TestMoveGenInvariant checks spec TESTABLE PROPERTIES #1: GenerateLegal
// equals the pseudo-legal set filtered by IsLegal, and no legal move
// leaves the mover's king in check, across a handful of positions reached
// by playing legal moves from the standard start.
func TestMoveGenInvariant(t *testing.T) {
	p := position.NewPosition()
	var frontier []*position.Position
	frontier = append(frontier, p)
	for ply := 0; ply < 3; ply++ {
		var next []*position.Position
		for _, pos := range frontier {
			var legal, pseudo types.MoveList
			GenerateLegal(pos, All, &legal)
			Generate(pos, All, &pseudo)

			var filtered []types.Move
			for i := 0; i < pseudo.Len(); i++ {
				if pos.IsLegal(pseudo.At(i)) {
					filtered = append(filtered, pseudo.At(i))
				}
			}
			assert.Equal(t, len(filtered), legal.Len())

			for i := 0; i < legal.Len(); i++ {
				m := legal.At(i)
				child := pos.Clone()
				child.DoMove(m)
				mover := pos.SideToMove()
				assert.False(t, child.IsSquareAttacked(child.KingSquare(mover), mover.Opposite()),
					"move %s leaves %s king in check", m, mover)
				if len(next) < 6 {
					next = append(next, child)
				}
			}
		}
		frontier = next
	}
}

func TestHasLegalMoveMatchesGenerateLegal(t *testing.T) {
	p := position.NewPosition()
	var legal types.MoveList
	GenerateLegal(p, All, &legal)
	assert.Equal(t, legal.Len() > 0, HasLegalMove(p))
}
