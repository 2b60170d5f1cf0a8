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

// CastlingRights is a 4-bit mask of the remaining castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// rightsToClear is indexed by square and gives the castling rights that are
// lost when a piece moves from or to that square (king/rook origin squares,
// and the rook's own square when it is captured).
var rightsToClear [SquareLength]CastlingRights

func init() {
	rightsToClear[SqE1] = WhiteKingside | WhiteQueenside
	rightsToClear[SqH1] = WhiteKingside
	rightsToClear[SqA1] = WhiteQueenside
	rightsToClear[SqE8] = BlackKingside | BlackQueenside
	rightsToClear[SqH8] = BlackKingside
	rightsToClear[SqA8] = BlackQueenside
}

// RightsToClear returns the castling rights invalidated by a move touching
// square s (applied to both the from- and to-squares of every move).
func RightsToClear(s Square) CastlingRights {
	return rightsToClear[s]
}

func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r != 0 }

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// CastlingRightsFromString parses a FEN castling field ("KQkq", "Kq", "-").
func CastlingRightsFromString(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return NoCastling, false
		}
	}
	return cr, true
}

// KingsideRookFrom / KingsideRookTo / QueensideRookFrom / QueensideRookTo
// give the rook's squares for a castling move, by color, used by make/unmake.
func KingsideRookFrom(c Color) Square {
	if c == White {
		return SqH1
	}
	return SqH8
}

func KingsideRookTo(c Color) Square {
	if c == White {
		return SqF1
	}
	return SqF8
}

func QueensideRookFrom(c Color) Square {
	if c == White {
		return SqA1
	}
	return SqA8
}

func QueensideRookTo(c Color) Square {
	if c == White {
		return SqD1
	}
	return SqD8
}

// KingStartSquare / KingsideTarget / QueensideTarget give the squares
// involved in castling from the king's point of view.
func KingStartSquare(c Color) Square {
	if c == White {
		return SqE1
	}
	return SqE8
}

func KingsideTarget(c Color) Square {
	if c == White {
		return SqG1
	}
	return SqG8
}

func QueensideTarget(c Color) Square {
	if c == White {
		return SqC1
	}
	return SqC8
}
