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

package evaluator

import (
	"math"

	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	"github.com/ASmolyar/chess-ai-sub001/internal/movegen"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// turingPieceValues reports TUROCHAMP's own pawn=1, knight=3, bishop=3.5,
// rook=5, queen=10 scale back out in centipawns, for callers (SEE, move
// ordering) that need a single per-piece number regardless of which
// evaluator is installed. TuringEvaluator itself never consults this table
// when scoring - materialRatio below works in "pawn units" directly.
var turingPieceValues = MaterialValues{
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   0,
}

// TuringEvaluator reproduces TUROCHAMP's paper-and-pencil evaluation: a
// material ratio that strictly dominates the score, plus a small
// position-play term (mobility, piece safety, king safety, castling, pawn
// advancement, checks and mate threats) folded in below its decimal point
// so it only ever breaks ties between otherwise-equal material.
type TuringEvaluator struct{}

// NewTuringEvaluator returns a TuringEvaluator. It takes no configuration -
// every weight below is Turing and Champernowne's own constant.
func NewTuringEvaluator() *TuringEvaluator { return &TuringEvaluator{} }

func (e *TuringEvaluator) Name() string { return "turing" }

func (e *TuringEvaluator) PieceValue(pt PieceType) Value { return turingPieceValues[pt] }

// Evaluate scores p from the side-to-move's perspective. Material is
// combined with position-play so that material strictly dominates:
// MMMMMP.PP, matching TUROCHAMP's own combination rule.
func (e *TuringEvaluator) Evaluate(p *position.Position) Value {
	mat := materialRatio(p)
	pp := positionPlay(p)

	m := math.Round(mat*100) * 10
	pv := math.Round(pp*100) / 1000
	return Value(m + pv)
}

// materialRatio returns the side to move's material advantage as own/opp,
// negated when behind so position-play still dominates the comparison in
// that case. Returns zero when material is equal.
func materialRatio(p *position.Position) float64 {
	us := p.SideToMove()
	them := us.Opposite()

	own := materialUnits(p, us)
	opp := materialUnits(p, them)

	switch {
	case own == opp:
		return 0
	case own > opp:
		return own / opp
	default:
		return -opp / own
	}
}

var turingUnitValues = map[PieceType]float64{
	Queen:  10,
	Rook:   5,
	Knight: 3,
	Bishop: 3.5,
	Pawn:   1,
}

func materialUnits(p *position.Position, side Color) float64 {
	var total float64
	for pt, unit := range turingUnitValues {
		total += unit * float64(p.PiecesBb(side, pt).PopCount())
	}
	if total == 0 {
		return 0.5 // lone king: half a pawn, never a true zero.
	}
	return total
}

// positionPlay sums the position-play terms TUROCHAMP credits: mobility,
// piece safety, king safety, castling, pawn advancement, and the threat of
// check or mate.
func positionPlay(p *position.Position) float64 {
	us := p.SideToMove()
	var score float64

	if p.CastlingRights().Has(rightsFor(us)) {
		score++
	}
	if hasCastledLooking(p, us) {
		score++
	}

	threats, mobility := mobilityAndThreats(p)
	score += threats
	score += mobility
	score += pieceSafety(p, us)
	score += kingSafety(p, us)
	score += pawnCredit(p, us)

	return score
}

func rightsFor(side Color) CastlingRights {
	if side == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

func hasCastledLooking(p *position.Position, side Color) bool {
	kingSq := p.KingSquare(side)
	if side == White {
		return kingSq == SqG1 || kingSq == SqC1
	}
	return kingSq == SqG8 || kingSq == SqC8
}

// mobilityAndThreats walks every pseudo-legal move once, crediting: one
// point the first time a move is found that castles, one point the first
// time a move threatens check, and one more point the first time a move
// threatens mate (returned as threats); and sqrt-scaled mobility per origin
// square, captures counting twice, pawn moves and castling excluded
// (returned as mobility) - mirroring TUROCHAMP's single pass over the
// legal move list.
func mobilityAndThreats(p *position.Position) (threats, mobility float64) {
	var ml MoveList
	movegen.Generate(p, movegen.All, &ml)

	fromCounts := map[Square]int{}
	var mayCheckMate, mayCheck, mayCastle bool

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !p.IsLegal(m) {
			continue
		}

		if m.MoveType() == Castling {
			if !mayCastle {
				mayCastle = true
				threats++
			}
			continue
		}

		isCapture := !p.PieceOn(m.To()).IsNone() || m.MoveType() == EnPassant
		pieceType := p.PieceOn(m.From()).TypeOf()

		p.DoMove(m)
		oppInCheck := p.InCheck()
		switch {
		case oppInCheck && !mayCheckMate && !movegen.HasLegalMove(p):
			mayCheckMate = true
			threats++
		case oppInCheck && !mayCheck:
			mayCheck = true
			threats++
		}
		p.UndoMove()

		if pieceType != Pawn {
			fromCounts[m.From()]++
			if isCapture {
				fromCounts[m.From()]++
			}
		}
	}

	for _, n := range fromCounts {
		mobility += math.Round(10*math.Sqrt(float64(n))) / 10
	}
	return threats, mobility
}

// pieceSafety credits 1.0 point for each rook/knight/bishop that is
// defended at least once, and 1.5 points if defended at least twice.
func pieceSafety(p *position.Position, side Color) float64 {
	occ := p.OccupiedAll()
	var score float64

	middle := p.PiecesBb(side, Rook) | p.PiecesBb(side, Knight) | p.PiecesBb(side, Bishop)
	for bb := middle; bb != BbZero; {
		from, rest := bb.PopLsb()
		bb = rest

		defenders := 0
		for _, pt := range [5]PieceType{King, Queen, Rook, Knight, Bishop} {
			defenders += (attacks.GetAttacksBb(pt, from, occ) & p.PiecesBb(side, pt)).PopCount()
		}
		defenders += (attacks.GetPawnAttacks(side.Opposite(), from) & p.PiecesBb(side, Pawn)).PopCount()

		if defenders > 0 {
			score++
		}
		if defenders > 1 {
			score += 0.5
		}
	}
	return score
}

// kingSafety deducts for king exposure: put a queen of the same color on
// the king's square and measure its mobility, then subtract it.
func kingSafety(p *position.Position, side Color) float64 {
	kingSq := p.KingSquare(side)
	occ := p.OccupiedAll() &^ kingSq.Bb()
	mobility := (attacks.GetAttacksBb(Queen, kingSq, occ) &^ p.OccupiedBb(side)).PopCount()
	return -math.Round(10*math.Sqrt(float64(mobility))) / 10
}

// pawnCredit adds 0.2 per rank a pawn has advanced and 0.3 if it is
// defended by a non-pawn piece.
func pawnCredit(p *position.Position, side Color) float64 {
	occ := p.OccupiedAll()
	var score float64

	startRank, forward := Rank2, 1
	if side == Black {
		startRank, forward = Rank7, -1
	}

	for bb := p.PiecesBb(side, Pawn); bb != BbZero; {
		from, rest := bb.PopLsb()
		bb = rest

		ranks := int(from.RankOf()) - int(startRank)
		if forward < 0 {
			ranks = -ranks
		}
		score += 0.2 * float64(ranks)

		for _, pt := range [5]PieceType{King, Queen, Rook, Knight, Bishop} {
			if attacks.GetAttacksBb(pt, from, occ)&p.PiecesBb(side, pt) != BbZero {
				score += 0.3
				break
			}
		}
	}
	return score
}
