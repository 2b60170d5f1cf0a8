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

import "fmt"

// Square is a board square numbered 0 (a1) .. 63 (h8), rank-major.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SquareLength = SqH8 + 1
)

// File is a column a..h, numbered 0..7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
)

// Rank is a row 1..8, numbered 0..7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
)

// Direction is a compass offset expressed in raw square-index deltas,
// used by the slow slider generator during magic-table initialization.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Southeast Direction = -7
	Southwest Direction = -9
	Northwest Direction = 7
)

// MakeSquare builds a square from file and rank.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

func (s Square) FileOf() File { return File(s & 7) }
func (s Square) RankOf() Rank { return Rank(s >> 3) }

func (s Square) IsValid() bool { return s >= SqA1 && s <= SqH8 }

// To steps one square in the given direction, returning SqNone if the
// destination would wrap around a file edge or fall off the board.
func (s Square) To(d Direction) Square {
	t := Square(int8(s) + int8(d))
	if !t.IsValid() {
		return SqNone
	}
	// file-wrap guard: a single step must not change file by more than one
	df := int(t.FileOf()) - int(s.FileOf())
	if df > 1 || df < -1 {
		return SqNone
	}
	return t
}

// String renders algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.FileOf()), '1'+byte(s.RankOf()))
}

// SquareFromString parses algebraic notation ("e4") or "-" (SqNone).
func SquareFromString(s string) (Square, bool) {
	if s == "-" {
		return SqNone, true
	}
	if len(s) != 2 {
		return SqNone, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, false
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), true
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// ManhattanDistance returns the taxicab distance between two squares.
func ManhattanDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}
