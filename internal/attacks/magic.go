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

// Package attacks precomputes and serves every attack-set lookup the move
// generator and evaluator need: pawn/knight/king jump tables, fancy-magic
// rook/bishop sliding tables, and between/line ray masks. Everything here is
// immutable after the package-level init() runs once, so it is safe to share
// read-only across concurrently running engines (spec 5).
package attacks

import (
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// magic holds the fancy-magic lookup data for one square of one slider type.
// The magic multipliers are not hardcoded constants; init() derives a working
// set at process start with the classical "try random sparse numbers until
// one verifies" approach, the same technique Stockfish-derived engines use.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	return uint((occupied & m.mask) * m.number >> m.shift)
}

var (
	rookMagics   [SquareLength]magic
	bishopMagics [SquareLength]magic

	rookTable   []Bitboard
	bishopTable []Bitboard
)

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// splitMix64 seeds the magic-candidate search deterministically so that
// attack tables are bit-identical across processes and platforms.
type splitMix64 struct{ state uint64 }

func (g *splitMix64) next() uint64 {
	g.state += 0x9E3779B97F4A7C15
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// sparse returns a candidate with roughly 1/8th of its bits set - such
// numbers make better magic-multiplier candidates on average.
func (g *splitMix64) sparse() uint64 {
	return g.next() & g.next() & g.next()
}

// slidingAttack computes, by brute-force ray walking, the attack set of a
// slider along the given directions on an arbitrary occupancy. Used only at
// init time to build the magic attack tables and the between/line masks -
// never on the hot path.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			n := s.To(d)
			if n == SqNone {
				break
			}
			attack = attack.PushSquare(n)
			if occupied.Has(n) {
				break
			}
			s = n
		}
	}
	return attack
}

func edgesFor(sq Square) Bitboard {
	return ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) |
		((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())
}

// initMagicSet fills in magics[] and backs every square's attack table with
// a shared, appropriately sized slice.
func initMagicSet(table *[]Bitboard, magics *[SquareLength]magic, dirs [4]Direction) {
	var totalSize int
	occupancy := make([]Bitboard, 4096)
	reference := make([]Bitboard, 4096)
	epoch := make([]int, 4096)

	// First pass: masks and subset sizes, to size the shared table.
	sizes := make([]int, SquareLength)
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := edgesFor(sq)
		mask := slidingAttack(dirs, sq, BbZero) &^ edges
		sizes[sq] = 1 << uint(mask.PopCount())
		totalSize += sizes[sq]
	}
	*table = make([]Bitboard, totalSize)

	offset := 0
	rng := &splitMix64{state: 0xA5A5A5A5A5A5A5A5}
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := edgesFor(sq)
		m := &magics[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())
		m.attacks = (*table)[offset : offset+sizes[sq]]
		offset += sizes[sq]

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		cnt := 0
		for i := 0; i < size; {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparse())
				if ((candidate * m.mask) >> 56).PopCount() >= 6 {
					break
				}
			}
			m.number = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func init() {
	initMagicSet(&rookTable, &rookMagics, rookDirs)
	initMagicSet(&bishopTable, &bishopMagics, bishopDirs)
}

func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}
