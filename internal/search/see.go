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

package search

import (
	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// SeeGe reports whether a static exchange evaluation of m on p gains at
// least threshold centipawns for the side to move (spec TESTABLE
// PROPERTIES #5's seeGe). It does not mutate p.
func SeeGe(p *position.Position, m types.Move, threshold types.Value) bool {
	return see(p, m) >= threshold
}

// see runs a static exchange evaluation of move on p: the net material gain
// (in centipawns, from the mover's perspective) after both sides play the
// best sequence of captures on move's target square. It does not mutate p.
func see(p *position.Position, m types.Move) types.Value {
	from := m.From()
	to := m.To()

	if m.MoveType() == types.EnPassant {
		return types.Value(types.Pawn.SeeValue())
	}

	us := p.SideToMove()
	occupied := p.OccupiedAll()

	var gain [32]types.Value
	depth := 0

	captured := p.PieceOn(to)
	gain[0] = types.Value(captured.TypeOf().SeeValue())
	attacker := p.PieceOn(from).TypeOf()

	occupied = occupied.PopSquare(from)
	attackers := p.AttackersTo(to, occupied)
	side := us.Opposite()

	for {
		sq, ok := leastValuableAttacker(p, attackers, occupied, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = types.Value(attacker.SeeValue()) - gain[depth-1]
		if maxValue(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attacker = p.PieceOn(sq).TypeOf()
		occupied = occupied.PopSquare(sq)
		attackers = attackers.PopSquare(sq)
		attackers |= revealedAttackers(p, to, occupied)
		attackers &= occupied

		side = side.Opposite()
		if depth >= 31 {
			break
		}
	}

	for depth > 0 {
		depth--
		gain[depth] = -maxValue(-gain[depth], gain[depth+1])
	}
	return gain[0]
}

// leastValuableAttacker returns the cheapest piece of side among attackers
// that is still present on occupied, preferring pawn < knight < bishop <
// rook < queen < king as the spec's exchange ordering requires.
func leastValuableAttacker(p *position.Position, attackers types.Bitboard, occupied types.Bitboard, side types.Color) (types.Square, bool) {
	attackers &= occupied
	own := attackers & p.OccupiedBb(side)
	if own == types.BbZero {
		return types.SqNone, false
	}
	order := [...]types.PieceType{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King}
	for _, pt := range order {
		bb := own & p.PiecesBb(side, pt)
		if bb != types.BbZero {
			return bb.Lsb(), true
		}
	}
	return types.SqNone, false
}

// revealedAttackers returns sliding attackers of sq that were blocked by the
// piece just removed from occupied - only rooks/bishops/queens can be
// revealed this way, so this only needs to probe along ranks/files/diagonals.
func revealedAttackers(p *position.Position, sq types.Square, occupied types.Bitboard) types.Bitboard {
	rookLike := attacks.GetAttacksBb(types.Rook, sq, occupied) & (p.PiecesBb(types.White, types.Rook) | p.PiecesBb(types.Black, types.Rook) |
		p.PiecesBb(types.White, types.Queen) | p.PiecesBb(types.Black, types.Queen))
	bishopLike := attacks.GetAttacksBb(types.Bishop, sq, occupied) & (p.PiecesBb(types.White, types.Bishop) | p.PiecesBb(types.Black, types.Bishop) |
		p.PiecesBb(types.White, types.Queen) | p.PiecesBb(types.Black, types.Queen))
	return rookLike | bishopLike
}

func maxValue(a, b types.Value) types.Value {
	if a > b {
		return a
	}
	return b
}
