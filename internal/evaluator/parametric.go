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
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// ParametricWeights configures every term of ParametricEvaluator. All
// weights are centipawn-scale multipliers.
type ParametricWeights struct {
	Material       MaterialValues `json:"material"`
	MobilityWeight float64        `json:"mobilityWeight"`
	KingSafety     Value          `json:"kingSafety"`
	PawnAdvance    Value          `json:"pawnAdvance"`
	DoubledPawn    Value          `json:"doubledPawn"`
	IsolatedPawn   Value          `json:"isolatedPawn"`
	PassedPawnRank Value          `json:"passedPawnRank"`
	RookOpenFile   Value          `json:"rookOpenFile"`
	RookSemiOpen   Value          `json:"rookSemiOpen"`
	CenterCore     Value          `json:"centerCore"`
	CenterExtended Value          `json:"centerExtended"`
	BishopPair     Value          `json:"bishopPair"`
	CastlingBonus  Value          `json:"castlingBonus"`
}

// DefaultParametricWeights mirrors the emphasis of a typical hand-tuned
// classical evaluator: material dominates, positional terms are modest
// nudges.
var DefaultParametricWeights = ParametricWeights{
	Material:       DefaultMaterialValues,
	MobilityWeight: 4.0,
	KingSafety:     -8,
	PawnAdvance:    4,
	DoubledPawn:    -12,
	IsolatedPawn:   -10,
	PassedPawnRank: 10,
	RookOpenFile:   20,
	RookSemiOpen:   10,
	CenterCore:     6,
	CenterExtended: 2,
	BishopPair:     30,
	CastlingBonus:  25,
}

var coreCenterBb = SqD4.Bb() | SqE4.Bb() | SqD5.Bb() | SqE5.Bb()

var extendedCenterBb = func() Bitboard {
	var bb Bitboard
	for f := FileC; f <= FileF; f++ {
		for r := Rank3; r <= Rank6; r++ {
			bb = bb.PushSquare(MakeSquare(f, r))
		}
	}
	return bb &^ coreCenterBb
}()

// ParametricEvaluator is the hard-wired classical evaluator of spec
// 4.5.4: material, sqrt-scaled grouped mobility, king-zone attack count,
// pawn advancement and structure, rook files, center control, bishop
// pair, and a castling bonus.
type ParametricEvaluator struct {
	Weights ParametricWeights
}

// NewParametricEvaluator returns a ParametricEvaluator using DefaultParametricWeights.
func NewParametricEvaluator() *ParametricEvaluator {
	return &ParametricEvaluator{Weights: DefaultParametricWeights}
}

func (e *ParametricEvaluator) Name() string { return "parametric" }

func (e *ParametricEvaluator) PieceValue(pt PieceType) Value { return e.Weights.Material[pt] }

func (e *ParametricEvaluator) Evaluate(p *position.Position) Value {
	us := p.SideToMove()
	them := us.Opposite()
	return e.scoreFor(p, us) - e.scoreFor(p, them)
}

func (e *ParametricEvaluator) scoreFor(p *position.Position, side Color) Value {
	w := &e.Weights
	var total float64

	for pt := Pawn; pt < PieceTypeLength; pt++ {
		total += float64(p.PiecesBb(side, pt).PopCount()) * float64(w.Material[pt])
	}

	total += e.mobility(p, side)
	total += float64(e.kingSafety(p, side))
	total += float64(e.pawnStructure(p, side))

	if p.PiecesBb(side, Bishop).PopCount() >= 2 {
		total += float64(w.BishopPair)
	}
	total += float64(e.rookFiles(p, side))
	total += float64(e.centerControl(p, side))
	total += float64(e.castlingBonus(p, side))

	return Value(total)
}

func (e *ParametricEvaluator) mobility(p *position.Position, side Color) float64 {
	occ := p.OccupiedAll()
	own := p.OccupiedBb(side)
	var total float64
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		for bb := p.PiecesBb(side, pt); bb != BbZero; {
			from, rest := bb.PopLsb()
			bb = rest
			count := (attacks.GetAttacksBb(pt, from, occ) &^ own).PopCount()
			total += math.Sqrt(float64(count)) * e.Weights.MobilityWeight
		}
	}
	return total
}

func (e *ParametricEvaluator) kingSafety(p *position.Position, side Color) Value {
	enemy := side.Opposite()
	kingSq := p.KingSquare(side)
	zone := attacks.GetAttacksBb(King, kingSq, BbZero) | kingSq.Bb()
	attacked := 0
	for bb := zone; bb != BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		if p.IsSquareAttacked(sq, enemy) {
			attacked++
		}
	}
	return Value(attacked) * e.Weights.KingSafety
}

func (e *ParametricEvaluator) pawnStructure(p *position.Position, side Color) Value {
	w := &e.Weights
	pawns := p.PiecesBb(side, Pawn)
	enemyPawns := p.PiecesBb(side.Opposite(), Pawn)
	var total Value

	startRank, forward := Rank2, 1
	if side == Black {
		startRank, forward = Rank7, -1
	}

	var fileCounts [8]int
	for bb := pawns; bb != BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		fileCounts[sq.FileOf()]++

		advancement := int(sq.RankOf()) - int(startRank)
		if forward < 0 {
			advancement = -advancement
		}
		total += Value(advancement) * w.PawnAdvance

		isolated := true
		if sq.FileOf() > FileA && (fileBb(sq.FileOf()-1)&pawns) != 0 {
			isolated = false
		}
		if sq.FileOf() < FileH && (fileBb(sq.FileOf()+1)&pawns) != 0 {
			isolated = false
		}
		if isolated {
			total += w.IsolatedPawn
		}

		if isPassedPawn(sq, side, enemyPawns) {
			total += Value(advancement) * w.PassedPawnRank
		}
	}
	for _, c := range fileCounts {
		if c > 1 {
			total += Value(c-1) * w.DoubledPawn
		}
	}
	return total
}

func fileBb(f File) Bitboard { return f.Bb() }

// isPassedPawn reports whether the pawn on sq has no enemy pawn on its own
// file or the adjacent files, ahead of it towards promotion.
func isPassedPawn(sq Square, side Color, enemyPawns Bitboard) bool {
	var mask Bitboard
	for _, f := range [3]int{int(sq.FileOf()) - 1, int(sq.FileOf()), int(sq.FileOf()) + 1} {
		if f >= int(FileA) && f <= int(FileH) {
			mask |= File(f).Bb()
		}
	}
	var ahead Bitboard
	if side == White {
		for r := sq.RankOf() + 1; r < RankLength; r++ {
			ahead |= r.Bb()
		}
	} else {
		for r := Rank(0); r < sq.RankOf(); r++ {
			ahead |= r.Bb()
		}
	}
	return mask&ahead&enemyPawns == BbZero
}

func (e *ParametricEvaluator) rookFiles(p *position.Position, side Color) Value {
	w := &e.Weights
	ownPawns := p.PiecesBb(side, Pawn)
	enemyPawns := p.PiecesBb(side.Opposite(), Pawn)
	var total Value
	for bb := p.PiecesBb(side, Rook); bb != BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		f := sq.FileOf().Bb()
		hasOwn := f&ownPawns != 0
		hasEnemy := f&enemyPawns != 0
		switch {
		case !hasOwn && !hasEnemy:
			total += w.RookOpenFile
		case !hasOwn && hasEnemy:
			total += w.RookSemiOpen
		}
	}
	return total
}

func (e *ParametricEvaluator) centerControl(p *position.Position, side Color) Value {
	occ := p.OccupiedAll()
	var attacked Bitboard
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		for bb := p.PiecesBb(side, pt); bb != BbZero; {
			sq, rest := bb.PopLsb()
			bb = rest
			if pt == Pawn {
				attacked |= attacks.GetPawnAttacks(side, sq)
			} else {
				attacked |= attacks.GetAttacksBb(pt, sq, occ)
			}
		}
	}
	core := (attacked & coreCenterBb).PopCount()
	extended := (attacked & extendedCenterBb).PopCount()
	return Value(core)*e.Weights.CenterCore + Value(extended)*e.Weights.CenterExtended
}

func (e *ParametricEvaluator) castlingBonus(p *position.Position, side Color) Value {
	kingSq := p.KingSquare(side)
	if side == White && (kingSq == SqG1 || kingSq == SqC1) {
		return e.Weights.CastlingBonus
	}
	if side == Black && (kingSq == SqG8 || kingSq == SqC8) {
		return e.Weights.CastlingBonus
	}
	return 0
}
