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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit word, one bit per square (bit sq == occupancy of sq).
type Bitboard uint64

const (
	BbZero  Bitboard = 0
	BbAll   Bitboard = 0xFFFFFFFFFFFFFFFF
	MsbMask Bitboard = 0x7FFFFFFFFFFFFFFF
)

var (
	fileBb [FileLength]Bitboard
	rankBb [RankLength]Bitboard
	sqBb   [SquareLength]Bitboard
)

// per-file masks used to stop horizontal wrap-around on shifts.
var (
	FileAMask Bitboard
	FileHMask Bitboard
	Rank1Mask Bitboard
	Rank8Mask Bitboard
)

func init() {
	for f := FileA; f < FileLength; f++ {
		var bb Bitboard
		for r := Rank1; r < RankLength; r++ {
			bb |= Bitboard(1) << uint(MakeSquare(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r < RankLength; r++ {
		var bb Bitboard
		for f := FileA; f < FileLength; f++ {
			bb |= Bitboard(1) << uint(MakeSquare(f, r))
		}
		rankBb[r] = bb
	}
	for s := SqA1; s <= SqH8; s++ {
		sqBb[s] = Bitboard(1) << uint(s)
	}
	FileAMask = ^fileBb[FileA]
	FileHMask = ^fileBb[FileH]
	Rank1Mask = ^rankBb[Rank1]
	Rank8Mask = ^rankBb[Rank8]
}

// Bb returns the singleton bitboard of the square.
func (s Square) Bb() Bitboard { return sqBb[s] }

// Bb returns the bitboard of all squares on the file.
func (f File) Bb() Bitboard { return fileBb[f] }

// Bb returns the bitboard of all squares on the rank.
func (r Rank) Bb() Bitboard { return rankBb[r] }

// Has reports whether square s is set in b.
func (b Bitboard) Has(s Square) bool { return b&sqBb[s] != 0 }

// PushSquare returns b with s set.
func (b Bitboard) PushSquare(s Square) Bitboard { return b | sqBb[s] }

// PopSquare returns b with s cleared.
func (b Bitboard) PopSquare(s Square) Bitboard { return b &^ sqBb[s] }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// ClearLsb returns b with its least-significant set bit removed.
func (b Bitboard) ClearLsb() Bitboard {
	return b & (b - 1)
}

// PopLsb returns the least-significant square and the bitboard with it removed.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	return b.Lsb(), b.ClearLsb()
}

// ShiftBitboard shifts every set bit one step in direction d, clearing bits
// that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case South:
		return b >> 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// String renders the bitboard as an 8x8 ascii grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
