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

// Package movegen produces pseudo-legal moves for a position: full move
// generation for the main search and a captures-only mode for quiescence.
// It never consults legality beyond what king-exposure leaves to the
// caller - Position.IsLegal is always the final filter.
package movegen

import (
	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// Mode selects which subset of pseudo-legal moves to produce.
type Mode uint8

const (
	// CapturesOnly yields captures (a capturing promotion to every piece
	// type), en-passant captures, and non-capturing promotions to a queen
	// only - used by quiescence search.
	CapturesOnly Mode = iota
	// All yields every pseudo-legal move.
	All
)

// Generate appends every pseudo-legal move for the side to move in mode to
// ml. ml is not cleared first, so callers own that decision.
func Generate(p *position.Position, mode Mode, ml *MoveList) {
	generatePawnMoves(p, mode, ml)
	generateKnightMoves(p, mode, ml)
	generateSliderMoves(p, Bishop, mode, ml)
	generateSliderMoves(p, Rook, mode, ml)
	generateSliderMoves(p, Queen, mode, ml)
	generateKingMoves(p, mode, ml)
	if mode == All {
		generateCastling(p, ml)
	}
}

// GenerateLegal returns every legal move for the side to move in mode,
// filtering Generate's pseudo-legal output through Position.IsLegal.
func GenerateLegal(p *position.Position, mode Mode, ml *MoveList) {
	var pseudo MoveList
	Generate(p, mode, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.IsLegal(m) {
			ml.Add(m)
		}
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full move list - used to decide checkmate vs
// stalemate once Checkers()/InCheck() is known.
func HasLegalMove(p *position.Position) bool {
	var pseudo MoveList
	Generate(p, All, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		if p.IsLegal(pseudo.At(i)) {
			return true
		}
	}
	return false
}

func generatePawnMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	them := us.Opposite()
	ourPawns := p.PiecesBb(us, Pawn)
	enemyPieces := p.OccupiedBb(them)
	empty := ^p.OccupiedAll()

	forward := North
	doubleStartRank := Rank2
	promotionRank := Rank8
	if us == Black {
		forward = South
		doubleStartRank = Rank7
		promotionRank = Rank1
	}

	addPromotions := func(from, to Square) {
		ml.Add(NewPromotionMove(from, to, Queen))
		ml.Add(NewPromotionMove(from, to, Rook))
		ml.Add(NewPromotionMove(from, to, Bishop))
		ml.Add(NewPromotionMove(from, to, Knight))
	}

	// captures, including promotion captures.
	for _, side := range [2]Direction{West, East} {
		captures := ShiftBitboard(ourPawns, forward+side) & enemyPieces
		for bb := captures; bb != BbZero; {
			to, rest := bb.PopLsb()
			bb = rest
			from := to.To(-forward - side)
			if to.RankOf() == promotionRank {
				addPromotions(from, to)
			} else {
				ml.Add(NewMove(from, to))
			}
		}
	}

	// en passant.
	if ep := p.EnPassantSquare(); ep != SqNone {
		for _, side := range [2]Direction{West, East} {
			attacker := ShiftBitboard(ep.Bb(), -forward-side) & ourPawns
			if attacker != BbZero {
				from := attacker.Lsb()
				ml.Add(NewTypedMove(from, ep, EnPassant))
			}
		}
	}

	if mode == CapturesOnly {
		// non-capturing promotions still count towards "captures-only":
		// spec 4.3 keeps the non-capturing queen promotion in quiescence.
		singleStep := ShiftBitboard(ourPawns, forward) & empty
		promos := singleStep & promotionRank.Bb()
		for bb := promos; bb != BbZero; {
			to, rest := bb.PopLsb()
			bb = rest
			from := to.To(-forward)
			ml.Add(NewPromotionMove(from, to, Queen))
		}
		return
	}

	// single and double pushes.
	singleStep := ShiftBitboard(ourPawns, forward) & empty
	doubleStep := ShiftBitboard(singleStep&doubleStartRankTargets(doubleStartRank, forward), forward) & empty

	promos := singleStep & promotionRank.Bb()
	for bb := promos; bb != BbZero; {
		to, rest := bb.PopLsb()
		bb = rest
		from := to.To(-forward)
		addPromotions(from, to)
	}
	nonPromoSingle := singleStep &^ promotionRank.Bb()
	for bb := nonPromoSingle; bb != BbZero; {
		to, rest := bb.PopLsb()
		bb = rest
		from := to.To(-forward)
		ml.Add(NewMove(from, to))
	}
	for bb := doubleStep; bb != BbZero; {
		to, rest := bb.PopLsb()
		bb = rest
		from := to.To(-forward).To(-forward)
		ml.Add(NewMove(from, to))
	}
}

// doubleStartRankTargets returns the single-step landing squares that are
// eligible for a further double-step push: pawns that just advanced from
// their own start rank.
func doubleStartRankTargets(startRank Rank, forward Direction) Bitboard {
	if forward == North {
		return Rank(int(startRank) + 1).Bb()
	}
	return Rank(int(startRank) - 1).Bb()
}

func generateKnightMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	targets := targetMask(p, us, mode)
	for bb := p.PiecesBb(us, Knight); bb != BbZero; {
		from, rest := bb.PopLsb()
		bb = rest
		for att := attacks.GetAttacksBb(Knight, from, BbZero) & targets; att != BbZero; {
			to, rest2 := att.PopLsb()
			att = rest2
			ml.Add(NewMove(from, to))
		}
	}
}

func generateSliderMoves(p *position.Position, pt PieceType, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	targets := targetMask(p, us, mode)
	occ := p.OccupiedAll()
	for bb := p.PiecesBb(us, pt); bb != BbZero; {
		from, rest := bb.PopLsb()
		bb = rest
		for att := attacks.GetAttacksBb(pt, from, occ) & targets; att != BbZero; {
			to, rest2 := att.PopLsb()
			att = rest2
			ml.Add(NewMove(from, to))
		}
	}
}

func generateKingMoves(p *position.Position, mode Mode, ml *MoveList) {
	us := p.SideToMove()
	from := p.KingSquare(us)
	targets := targetMask(p, us, mode)
	for att := attacks.GetAttacksBb(King, from, BbZero) & targets; att != BbZero; {
		to, rest := att.PopLsb()
		att = rest
		ml.Add(NewMove(from, to))
	}
}

func generateCastling(p *position.Position, ml *MoveList) {
	us := p.SideToMove()
	if p.InCheck() {
		return
	}
	occ := p.OccupiedAll()
	cr := p.CastlingRights()
	if us == White {
		if cr.Has(WhiteKingside) && attacks.Between(SqE1, SqH1)&occ == BbZero {
			ml.Add(NewTypedMove(SqE1, SqG1, Castling))
		}
		if cr.Has(WhiteQueenside) && attacks.Between(SqE1, SqA1)&occ == BbZero {
			ml.Add(NewTypedMove(SqE1, SqC1, Castling))
		}
	} else {
		if cr.Has(BlackKingside) && attacks.Between(SqE8, SqH8)&occ == BbZero {
			ml.Add(NewTypedMove(SqE8, SqG8, Castling))
		}
		if cr.Has(BlackQueenside) && attacks.Between(SqE8, SqA8)&occ == BbZero {
			ml.Add(NewTypedMove(SqE8, SqC8, Castling))
		}
	}
}

// targetMask restricts landing squares to the enemy side's pieces in
// captures-only mode, or to every non-own square in full mode.
func targetMask(p *position.Position, us Color, mode Mode) Bitboard {
	if mode == CapturesOnly {
		return p.OccupiedBb(us.Opposite())
	}
	return ^p.OccupiedBb(us)
}
