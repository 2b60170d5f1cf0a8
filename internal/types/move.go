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

// MoveType distinguishes the four move shapes the packed Move encodes.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a packed 16-bit value: from (6 bits) | to (6 bits) | kind (2 bits)
// | promotion-piece selector (2 bits, knight/bishop/rook/queen). The zero
// value, MoveNone, is the null move (from == to == a1, kind == Normal).
type Move uint16

const MoveNone Move = 0

var promoPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// NewMove builds a normal (non-promotion, non-special) move.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<6)
}

// NewTypedMove builds a move of the given kind.
func NewTypedMove(from, to Square, kind MoveType) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(kind)<<12)
}

// NewPromotionMove builds a promotion move to the given piece type, which
// must be one of Knight, Bishop, Rook, Queen.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	var sel uint16
	switch promo {
	case Knight:
		sel = 0
	case Bishop:
		sel = 1
	case Rook:
		sel = 2
	case Queen:
		sel = 3
	}
	return Move(uint16(from) | uint16(to)<<6 | uint16(Promotion)<<12 | sel<<14)
}

func (m Move) From() Square    { return Square(m & 0x3F) }
func (m Move) To() Square      { return Square((m >> 6) & 0x3F) }
func (m Move) MoveType() MoveType { return MoveType((m >> 12) & 0x3) }

// PromotionType returns the promotion piece type. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return promoPieces[(m>>14)&0x3]
}

func (m Move) IsNone() bool { return m == MoveNone }

// String renders UCI long-algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		switch m.PromotionType() {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}

// MoveListCapacity bounds MoveList - chess positions never exceed it
// (the historical maximum is well under 220 legal moves).
const MoveListCapacity = 256

// MoveList is a stack-allocated, fixed-capacity list of moves - no resizing,
// no allocation during move generation or search.
type MoveList struct {
	moves [MoveListCapacity]Move
	len   int
}

func (l *MoveList) Add(m Move) {
	l.moves[l.len] = m
	l.len++
}

func (l *MoveList) Len() int          { return l.len }
func (l *MoveList) At(i int) Move     { return l.moves[i] }
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }
func (l *MoveList) Reset()            { l.len = 0 }

// Slice returns the populated prefix of the backing array. The returned
// slice aliases the MoveList's storage and is only valid until the next
// mutation.
func (l *MoveList) Slice() []Move { return l.moves[:l.len] }
