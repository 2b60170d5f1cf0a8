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

package types

// Key is a zobrist hash of a chess position. Needs the full 64 bits for
// distribution.
type Key uint64

var (
	ZobristPieceSquare [PieceTypeLength][ColorLength][SquareLength]Key
	ZobristCastling    [16]Key
	ZobristEpFile      [FileLength]Key
	ZobristSide        Key
)

// splitMix64 is a small, deterministic, seedable generator used only to
// build the zobrist tables once at process start - it has no bearing on
// search determinism since the tables never change after init.
type splitMix64 struct{ state uint64 }

func (g *splitMix64) next() uint64 {
	g.state += 0x9E3779B97F4A7C15
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func init() {
	g := &splitMix64{state: 0x5EED5EED5EED5EED}
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		for c := White; c < ColorLength; c++ {
			for s := SqA1; s <= SqH8; s++ {
				ZobristPieceSquare[pt][c][s] = Key(g.next())
			}
		}
	}
	for i := range ZobristCastling {
		ZobristCastling[i] = Key(g.next())
	}
	for f := FileA; f < FileLength; f++ {
		ZobristEpFile[f] = Key(g.next())
	}
	ZobristSide = Key(g.next())
}
