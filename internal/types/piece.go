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

// PieceType is the kind of a piece, independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

var pieceTypeChar = " PNBRQK"

func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "?"
	}
	return string(pieceTypeChar[pt])
}

// PieceTypeFromChar maps an uppercase piece letter (as in FEN) to a PieceType.
func PieceTypeFromChar(c byte) (PieceType, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

// Piece packs a Color and a PieceType into a single byte: bit 3 is the
// color, bits 0-2 are the piece type. PieceNone is the zero value.
type Piece uint8

const (
	PieceNone Piece = 0
)

// MakePiece builds the packed Piece value for (c, pt).
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf returns the color of a non-empty piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, ignoring color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x7)
}

func (p Piece) IsNone() bool {
	return p.TypeOf() == NoPieceType
}

// String renders the piece using uppercase for white, lowercase for black,
// and a single space for an empty square (FEN mailbox convention).
func (p Piece) String() string {
	if p.IsNone() {
		return " "
	}
	s := p.TypeOf().String()
	if p.ColorOf() == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// PieceFromChar parses a single FEN piece letter into a Piece.
func PieceFromChar(c byte) (Piece, bool) {
	if c >= 'a' && c <= 'z' {
		pt, ok := PieceTypeFromChar(c - ('a' - 'A'))
		if !ok {
			return PieceNone, false
		}
		return MakePiece(Black, pt), true
	}
	pt, ok := PieceTypeFromChar(c)
	if !ok {
		return PieceNone, false
	}
	return MakePiece(White, pt), true
}

// fixed piece values used by SEE and material-only evaluation (spec 4.2, 4.5.4).
var seePieceValue = [PieceTypeLength]int{
	NoPieceType: 0,
	Pawn:        100,
	Knight:      300,
	Bishop:      300,
	Rook:        500,
	Queen:       900,
	King:        10000,
}

// SeeValue returns the fixed material value used by static exchange
// evaluation, independent of any installed evaluator.
func (pt PieceType) SeeValue() int {
	return seePieceValue[pt]
}
