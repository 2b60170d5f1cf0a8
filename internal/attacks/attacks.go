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

package attacks

import (
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

var (
	pawnAttackTable  [ColorLength][SquareLength]Bitboard
	knightAttackTable [SquareLength]Bitboard
	kingAttackTable   [SquareLength]Bitboard

	betweenTable [SquareLength][SquareLength]Bitboard
	lineTable    [SquareLength][SquareLength]Bitboard
)

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		// pawn attacks: the two diagonal forward squares per color.
		if r < 7 {
			if f > 0 {
				pawnAttackTable[White][sq] = pawnAttackTable[White][sq].PushSquare(MakeSquare(File(f-1), Rank(r+1)))
			}
			if f < 7 {
				pawnAttackTable[White][sq] = pawnAttackTable[White][sq].PushSquare(MakeSquare(File(f+1), Rank(r+1)))
			}
		}
		if r > 0 {
			if f > 0 {
				pawnAttackTable[Black][sq] = pawnAttackTable[Black][sq].PushSquare(MakeSquare(File(f-1), Rank(r-1)))
			}
			if f < 7 {
				pawnAttackTable[Black][sq] = pawnAttackTable[Black][sq].PushSquare(MakeSquare(File(f+1), Rank(r-1)))
			}
		}

		// knight attacks: eight L-shapes, clipped to the board.
		for _, o := range knightOffsets {
			nf, nr := f+o[0], r+o[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttackTable[sq] = knightAttackTable[sq].PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}

		// king attacks: eight adjacent squares, clipped to the board.
		for _, o := range kingOffsets {
			nf, nr := f+o[0], r+o[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttackTable[sq] = kingAttackTable[sq].PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}
	}

	initBetweenAndLine()
}

// initBetweenAndLine fills between[s1][s2] (squares strictly between s1 and
// s2 along a shared rook or bishop ray, empty if not aligned) and
// line[s1][s2] (the full ray through both, empty if not aligned).
var oppositeDir = map[Direction]Direction{
	North: South, South: North,
	East: West, West: East,
	Northeast: Southwest, Southwest: Northeast,
	Southeast: Northwest, Northwest: Southeast,
}

func initBetweenAndLine() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for _, dirs := range [][4]Direction{rookDirs, bishopDirs} {
			for _, d := range dirs {
				// full line through s1 in direction d and its opposite.
				fullLine := s1.Bb()
				s := s1
				for {
					n := s.To(d)
					if n == SqNone {
						break
					}
					fullLine = fullLine.PushSquare(n)
					s = n
				}
				s = s1
				for {
					n := s.To(oppositeDir[d])
					if n == SqNone {
						break
					}
					fullLine = fullLine.PushSquare(n)
					s = n
				}

				// for every square on the ray from s1 in direction d, the
				// between-set is everything walked so far (exclusive).
				var walked Bitboard
				s = s1
				for {
					n := s.To(d)
					if n == SqNone {
						break
					}
					betweenTable[s1][n] = walked
					lineTable[s1][n] = fullLine
					walked = walked.PushSquare(n)
					s = n
				}
			}
		}
	}
}

// GetPawnAttacks returns the two squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard { return pawnAttackTable[c][sq] }

// GetAttacksBb returns the attack set of a piece of type pt standing on sq,
// given the full board occupancy (only sliders consult it).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttackTable[sq]
	case King:
		return kingAttackTable[sq]
	case Bishop:
		return bishopAttacks(sq, occupied)
	case Rook:
		return rookAttacks(sq, occupied)
	case Queen:
		return rookAttacks(sq, occupied) | bishopAttacks(sq, occupied)
	default:
		return BbZero
	}
}

// Between returns the squares strictly between s1 and s2 along a rook or
// bishop ray, or BbZero if the squares do not share one.
func Between(s1, s2 Square) Bitboard { return betweenTable[s1][s2] }

// Line returns the full ray (both ends and everything between and beyond)
// through s1 and s2, or BbZero if they do not share a rook/bishop ray.
func Line(s1, s2 Square) Bitboard { return lineTable[s1][s2] }

// Aligned reports whether s1, s2, s3 all lie on a common rook or bishop ray.
func Aligned(s1, s2, s3 Square) bool {
	return lineTable[s1][s2]&s3.Bb() != 0
}
