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

package ruleeval

import (
	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// Phase is a coarse game-phase bucket derived from non-pawn material,
// consulted by the game-phase condition.
type Phase uint8

const (
	Opening Phase = iota
	Middlegame
	Endgame
	LateEndgame
)

func (ph Phase) String() string {
	switch ph {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	case Endgame:
		return "endgame"
	default:
		return "late-endgame"
	}
}

// nonPawnWeight mirrors spec 4.5.1's phase weights: knight=3, bishop=3,
// rook=5, queen=9.
var nonPawnWeight = map[types.PieceType]int{
	types.Knight: 3,
	types.Bishop: 3,
	types.Rook:   5,
	types.Queen:  9,
}

func computePhase(p *position.Position) Phase {
	total := 0
	for _, side := range [2]types.Color{types.White, types.Black} {
		for pt, w := range nonPawnWeight {
			total += w * p.PiecesBb(side, pt).PopCount()
		}
	}
	switch {
	case total >= 50:
		return Opening
	case total >= 30:
		return Middlegame
	case total >= 10:
		return Endgame
	default:
		return LateEndgame
	}
}

// sideContext holds every per-color scratch artifact that more than one
// rule might need, computed at most once per Evaluate call. attacksByType
// is filled lazily: most rule sets only reference a handful of piece
// types, so eager computation for all six would waste work on rule sets
// that never ask for e.g. king attacks.
type sideContext struct {
	color types.Color

	pieces   [types.PieceTypeLength]types.Bitboard
	occupied types.Bitboard
	kingSq   types.Square
	kingZone types.Bitboard

	attacksByType [types.PieceTypeLength]types.Bitboard
	attacksValid  [types.PieceTypeLength]bool

	doubled   types.Bitboard
	isolated  types.Bitboard
	connected types.Bitboard
	passed    types.Bitboard
}

func buildSideContext(p *position.Position, side types.Color) *sideContext {
	sc := &sideContext{color: side}
	for pt := types.Pawn; pt < types.PieceTypeLength; pt++ {
		sc.pieces[pt] = p.PiecesBb(side, pt)
	}
	sc.occupied = p.OccupiedBb(side)
	sc.kingSq = p.KingSquare(side)
	sc.kingZone = attacks.GetAttacksBb(types.King, sc.kingSq, types.BbZero) | sc.kingSq.Bb()
	computePawnStructure(sc, p, side)
	return sc
}

// attacksOf returns (and memoizes) every square attacked by side's pieces
// of type pt, so a rule family asking about the same piece type's attacks
// more than once only walks the piece list and the magic tables once.
func (sc *sideContext) attacksOf(p *position.Position, pt types.PieceType) types.Bitboard {
	if sc.attacksValid[pt] {
		return sc.attacksByType[pt]
	}
	occ := p.OccupiedAll()
	var bb types.Bitboard
	for bits := sc.pieces[pt]; bits != types.BbZero; {
		from, rest := bits.PopLsb()
		bits = rest
		if pt == types.Pawn {
			bb |= attacks.GetPawnAttacks(sc.color, from)
		} else {
			bb |= attacks.GetAttacksBb(pt, from, occ)
		}
	}
	sc.attacksByType[pt] = bb
	sc.attacksValid[pt] = true
	return bb
}

// allAttacks unions attacksOf across every piece type, for targets (like
// king-safety and center-control) that ask "is this square attacked by
// any of the side's pieces" rather than by one specific piece type.
func (sc *sideContext) allAttacks(p *position.Position) types.Bitboard {
	var bb types.Bitboard
	for pt := types.Pawn; pt < types.PieceTypeLength; pt++ {
		bb |= sc.attacksOf(p, pt)
	}
	return bb
}

func computePawnStructure(sc *sideContext, p *position.Position, side types.Color) {
	pawns := sc.pieces[types.Pawn]
	enemyPawns := p.PiecesBb(side.Opposite(), types.Pawn)

	var fileCounts [types.FileLength]int
	for bb := pawns; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		fileCounts[sq.FileOf()]++
	}

	for bb := pawns; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		f := sq.FileOf()

		if fileCounts[f] > 1 {
			sc.doubled = sc.doubled.PushSquare(sq)
		}

		isolated := true
		if f > types.FileA && fileBb(f-1)&pawns != 0 {
			isolated = false
		}
		if f < types.FileH && fileBb(f+1)&pawns != 0 {
			isolated = false
		}
		if isolated {
			sc.isolated = sc.isolated.PushSquare(sq)
		}

		if attacks.GetPawnAttacks(side.Opposite(), sq)&pawns != 0 {
			sc.connected = sc.connected.PushSquare(sq)
		}

		if isPassedPawn(sq, side, enemyPawns) {
			sc.passed = sc.passed.PushSquare(sq)
		}
	}
}

func fileBb(f types.File) types.Bitboard { return f.Bb() }

func isPassedPawn(sq types.Square, side types.Color, enemyPawns types.Bitboard) bool {
	var mask types.Bitboard
	for _, f := range [3]int{int(sq.FileOf()) - 1, int(sq.FileOf()), int(sq.FileOf()) + 1} {
		if f >= int(types.FileA) && f <= int(types.FileH) {
			mask |= types.File(f).Bb()
		}
	}
	var ahead types.Bitboard
	if side == types.White {
		for r := sq.RankOf() + 1; r < types.RankLength; r++ {
			ahead |= r.Bb()
		}
	} else {
		for r := types.Rank(0); r < sq.RankOf(); r++ {
			ahead |= r.Bb()
		}
	}
	return mask&ahead&enemyPawns == types.BbZero
}

// evalContext is built once per Evaluate call and handed to every
// condition/target lookup, so the expensive per-color artifacts above are
// computed at most once regardless of how many rules reference them.
type evalContext struct {
	pos   *position.Position
	phase Phase
	sides [types.ColorLength]*sideContext
}

func newEvalContext(p *position.Position) *evalContext {
	ctx := &evalContext{pos: p, phase: computePhase(p)}
	ctx.sides[types.White] = buildSideContext(p, types.White)
	ctx.sides[types.Black] = buildSideContext(p, types.Black)
	return ctx
}

func (ctx *evalContext) side(c types.Color) *sideContext { return ctx.sides[c] }
