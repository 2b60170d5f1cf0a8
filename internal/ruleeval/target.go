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
	"fmt"

	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// TargetKind discriminates the Target variants of spec 4.5.1. As with
// Condition, Target is one flat struct with the unused fields for a given
// Kind left at their zero value.
type TargetKind string

const (
	TargetPieceCount       TargetKind = "piece-count"
	TargetBishopPair       TargetKind = "bishop-pair"
	TargetMobility         TargetKind = "mobility"
	TargetDefense          TargetKind = "defense"
	TargetPieceDistance    TargetKind = "piece-distance"
	TargetPawnAdvancement  TargetKind = "pawn-advancement"
	TargetPawnStructure    TargetKind = "pawn-structure"
	TargetPassedPawn       TargetKind = "passed-pawn"
	TargetKingSafety       TargetKind = "king-safety"
	TargetCenterControl    TargetKind = "center-control"
	TargetRookFile         TargetKind = "rook-file"
	TargetDevelopment      TargetKind = "development"
	TargetCheck            TargetKind = "check"
	TargetPieceSquareTable TargetKind = "piece-square-table"
	TargetGlobal           TargetKind = "global"
)

// PawnStructureKind selects which structural property pawn-structure counts.
type PawnStructureKind string

const (
	PawnDoubled   PawnStructureKind = "doubled"
	PawnIsolated  PawnStructureKind = "isolated"
	PawnConnected PawnStructureKind = "connected"
)

// CenterZone selects the core or extended center squares.
type CenterZone string

const (
	CenterCore     CenterZone = "core"
	CenterExtended CenterZone = "extended"
)

// RookFileKind selects which rook-file property to measure.
type RookFileKind string

const (
	RookOpenFile RookFileKind = "open"
	RookSemiOpen RookFileKind = "semi-open"
	RookQuality  RookFileKind = "quality"
)

// DevelopmentKind selects which structural development test to run.
type DevelopmentKind string

const (
	DevelopmentAllMinors      DevelopmentKind = "all-minors"
	DevelopmentFianchetto     DevelopmentKind = "fianchetto"
	DevelopmentCentralKnights DevelopmentKind = "central-knights"
)

// Target enumerates the units contributing score for a rule, per spec
// 4.5.1. Measurements returns one float64 per contribution.
type Target struct {
	Kind TargetKind `json:"type"`

	// piece-count, mobility, defense, piece-square-table
	PieceType types.PieceType `json:"piece_type,omitempty"`

	// mobility
	CaptureWeight float64 `json:"capture_weight,omitempty"`

	// defense
	MinDefenders int `json:"min_defenders,omitempty"`

	// piece-distance
	Metric DistanceMetric `json:"metric,omitempty"`
	P1     PieceRef        `json:"p1,omitempty"`
	P2     PieceRef        `json:"p2,omitempty"`

	// pawn-structure
	PawnStructureKind PawnStructureKind `json:"pawn_structure_kind,omitempty"`

	// center-control
	CenterZone CenterZone `json:"center_zone,omitempty"`

	// rook-file
	RookFileKind RookFileKind `json:"rook_file_kind,omitempty"`

	// development
	DevelopmentKind DevelopmentKind `json:"development_kind,omitempty"`

	// piece-square-table: Table[sq] for White; Black reads Table[sq^56]
	// (vertical mirror) so one table serves both sides.
	Table *[64]float64 `json:"table,omitempty"`
}

var coreCenterBb = types.SqD4.Bb() | types.SqE4.Bb() | types.SqD5.Bb() | types.SqE5.Bb()

var extendedCenterBb = func() types.Bitboard {
	var bb types.Bitboard
	for f := types.FileC; f <= types.FileF; f++ {
		for r := types.Rank3; r <= types.Rank6; r++ {
			bb = bb.PushSquare(types.MakeSquare(f, r))
		}
	}
	return bb &^ coreCenterBb
}()

// Validate reports a descriptive error for a structurally unsound target.
func (t *Target) Validate() error {
	switch t.Kind {
	case TargetPieceCount, TargetBishopPair, TargetPawnAdvancement, TargetPassedPawn,
		TargetKingSafety, TargetCheck, TargetGlobal:
	case TargetMobility:
		if t.PieceType == types.NoPieceType || t.PieceType == types.Pawn || t.PieceType == types.King {
			return fmt.Errorf("ruleeval: mobility target needs a knight/bishop/rook/queen piece type")
		}
	case TargetDefense:
		if t.MinDefenders < 1 {
			return fmt.Errorf("ruleeval: defense target needs min_defenders >= 1")
		}
	case TargetPieceDistance:
		if !validWho(t.P1.Who) || !validWho(t.P2.Who) {
			return fmt.Errorf("ruleeval: piece-distance target has an invalid piece reference")
		}
	case TargetPawnStructure:
		switch t.PawnStructureKind {
		case PawnDoubled, PawnIsolated, PawnConnected:
		default:
			return fmt.Errorf("ruleeval: unknown pawn-structure kind %q", t.PawnStructureKind)
		}
	case TargetCenterControl:
		switch t.CenterZone {
		case CenterCore, CenterExtended:
		default:
			return fmt.Errorf("ruleeval: unknown center-control zone %q", t.CenterZone)
		}
	case TargetRookFile:
		switch t.RookFileKind {
		case RookOpenFile, RookSemiOpen, RookQuality:
		default:
			return fmt.Errorf("ruleeval: unknown rook-file kind %q", t.RookFileKind)
		}
	case TargetDevelopment:
		switch t.DevelopmentKind {
		case DevelopmentAllMinors, DevelopmentFianchetto, DevelopmentCentralKnights:
		default:
			return fmt.Errorf("ruleeval: unknown development kind %q", t.DevelopmentKind)
		}
	case TargetPieceSquareTable:
		if t.Table == nil {
			return fmt.Errorf("ruleeval: piece-square-table target needs a table")
		}
	default:
		return fmt.Errorf("ruleeval: unknown target kind %q", t.Kind)
	}
	return nil
}

// measurements is the single interpreter path for every target kind: the
// "compiled" evaluator (see ruleeval.go) calls this exact function, just
// against a sideContext whose attack bitboards and pawn-structure sets are
// already memoized, so there is only ever one scoring result to disagree
// with spec 4.5.3's "generic path must match compiled output" requirement.
func (t *Target) measurements(ctx *evalContext, side types.Color) []float64 {
	switch t.Kind {
	case TargetPieceCount:
		return repeatOne(ctx.side(side).pieces[t.PieceType].PopCount())
	case TargetBishopPair:
		if ctx.side(side).pieces[types.Bishop].PopCount() >= 2 {
			return []float64{1}
		}
		return nil
	case TargetMobility:
		return t.mobilityMeasurements(ctx, side)
	case TargetDefense:
		return t.defenseMeasurements(ctx, side)
	case TargetPieceDistance:
		return t.pieceDistanceMeasurements(ctx, side)
	case TargetPawnAdvancement:
		return pawnAdvancementMeasurements(ctx, side)
	case TargetPawnStructure:
		return t.pawnStructureMeasurements(ctx, side)
	case TargetPassedPawn:
		return passedPawnMeasurements(ctx, side)
	case TargetKingSafety:
		return kingSafetyMeasurements(ctx, side)
	case TargetCenterControl:
		return t.centerControlMeasurements(ctx, side)
	case TargetRookFile:
		return t.rookFileMeasurements(ctx, side)
	case TargetDevelopment:
		return t.developmentMeasurements(ctx, side)
	case TargetCheck:
		return checkMeasurements(ctx, side)
	case TargetPieceSquareTable:
		return t.pieceSquareTableMeasurements(ctx, side)
	case TargetGlobal:
		return []float64{1}
	default:
		return nil
	}
}

func repeatOne(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func (t *Target) mobilityMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	occ := ctx.pos.OccupiedAll()
	own := sc.occupied
	enemy := ctx.side(side.Opposite()).occupied

	var out []float64
	for bb := sc.pieces[t.PieceType]; bb != types.BbZero; {
		from, rest := bb.PopLsb()
		bb = rest
		reach := attacks.GetAttacksBb(t.PieceType, from, occ) &^ own
		quiet := (reach &^ enemy).PopCount()
		captures := (reach & enemy).PopCount()
		out = append(out, float64(quiet)+t.CaptureWeight*float64(captures))
	}
	return out
}

func (t *Target) defenseMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	occ := ctx.pos.OccupiedAll()

	var out []float64
	for bb := sc.pieces[t.PieceType]; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest

		defenders := 0
		for _, pt := range [5]types.PieceType{types.King, types.Queen, types.Rook, types.Knight, types.Bishop} {
			defenders += (attacks.GetAttacksBb(pt, sq, occ) & sc.pieces[pt]).PopCount()
		}
		defenders += (attacks.GetPawnAttacks(side.Opposite(), sq) & sc.pieces[types.Pawn]).PopCount()

		if defenders >= t.MinDefenders {
			out = append(out, 1)
		}
	}
	return out
}

func (t *Target) pieceDistanceMeasurements(ctx *evalContext, side types.Color) []float64 {
	sq1, ok1 := t.P1.resolve(ctx, side)
	sq2, ok2 := t.P2.resolve(ctx, side)
	if !ok1 || !ok2 {
		return nil
	}
	if t.Metric == Manhattan {
		return []float64{float64(types.ManhattanDistance(sq1, sq2))}
	}
	return []float64{float64(types.SquareDistance(sq1, sq2))}
}

func pawnAdvancementMeasurements(ctx *evalContext, side types.Color) []float64 {
	startRank, forward := types.Rank2, 1
	if side == types.Black {
		startRank, forward = types.Rank7, -1
	}

	var out []float64
	for bb := ctx.side(side).pieces[types.Pawn]; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		adv := int(sq.RankOf()) - int(startRank)
		if forward < 0 {
			adv = -adv
		}
		out = append(out, float64(adv))
	}
	return out
}

func (t *Target) pawnStructureMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	var n int
	switch t.PawnStructureKind {
	case PawnDoubled:
		n = sc.doubled.PopCount()
	case PawnIsolated:
		n = sc.isolated.PopCount()
	case PawnConnected:
		n = sc.connected.PopCount()
	}
	if n == 0 {
		return nil
	}
	return []float64{float64(n)}
}

func passedPawnMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	startRank, forward := types.Rank2, 1
	if side == types.Black {
		startRank, forward = types.Rank7, -1
	}

	var out []float64
	for bb := sc.passed; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		adv := int(sq.RankOf()) - int(startRank)
		if forward < 0 {
			adv = -adv
		}
		out = append(out, float64(adv))
	}
	return out
}

func kingSafetyMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	enemy := ctx.side(side.Opposite())
	attacked := 0
	for bb := sc.kingZone; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		if enemy.allAttacks(ctx.pos)&sq.Bb() != 0 {
			attacked++
		}
	}
	return []float64{float64(attacked)}
}

func (t *Target) centerControlMeasurements(ctx *evalContext, side types.Color) []float64 {
	attacked := ctx.side(side).allAttacks(ctx.pos)
	zone := coreCenterBb
	if t.CenterZone == CenterExtended {
		zone = extendedCenterBb
	}
	return []float64{float64((attacked & zone).PopCount())}
}

func (t *Target) rookFileMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	ownPawns := sc.pieces[types.Pawn]
	enemyPawns := ctx.side(side.Opposite()).pieces[types.Pawn]

	var out []float64
	for bb := sc.pieces[types.Rook]; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		f := sq.FileOf().Bb()
		hasOwn := f&ownPawns != 0
		hasEnemy := f&enemyPawns != 0

		switch t.RookFileKind {
		case RookOpenFile:
			if !hasOwn && !hasEnemy {
				out = append(out, 1)
			}
		case RookSemiOpen:
			if !hasOwn && hasEnemy {
				out = append(out, 1)
			}
		case RookQuality:
			switch {
			case !hasOwn && !hasEnemy:
				out = append(out, 2)
			case !hasOwn && hasEnemy:
				out = append(out, 1)
			default:
				out = append(out, 0)
			}
		}
	}
	return out
}

func (t *Target) developmentMeasurements(ctx *evalContext, side types.Color) []float64 {
	sc := ctx.side(side)
	switch t.DevelopmentKind {
	case DevelopmentAllMinors:
		knightHome, bishopHome := minorHomeSquares(side)
		developed := sc.pieces[types.Knight]&knightHome == 0 && sc.pieces[types.Bishop]&bishopHome == 0
		if developed {
			return []float64{1}
		}
		return nil
	case DevelopmentFianchetto:
		kingside, queenside := fianchettoSquares(side)
		n := 0
		if sc.pieces[types.Bishop]&kingside != 0 {
			n++
		}
		if sc.pieces[types.Bishop]&queenside != 0 {
			n++
		}
		if n == 0 {
			return nil
		}
		return []float64{float64(n)}
	case DevelopmentCentralKnights:
		n := (sc.pieces[types.Knight] & extendedCenterBb).PopCount()
		if n == 0 {
			return nil
		}
		return []float64{float64(n)}
	default:
		return nil
	}
}

func minorHomeSquares(side types.Color) (knightHome, bishopHome types.Bitboard) {
	if side == types.White {
		return types.SqB1.Bb() | types.SqG1.Bb(), types.SqC1.Bb() | types.SqF1.Bb()
	}
	return types.SqB8.Bb() | types.SqG8.Bb(), types.SqC8.Bb() | types.SqF8.Bb()
}

func fianchettoSquares(side types.Color) (kingside, queenside types.Bitboard) {
	if side == types.White {
		return types.SqG2.Bb(), types.SqB2.Bb()
	}
	return types.SqG7.Bb(), types.SqB7.Bb()
}

func checkMeasurements(ctx *evalContext, side types.Color) []float64 {
	oppKing := ctx.side(side.Opposite()).kingSq
	if ctx.pos.IsSquareAttacked(oppKing, side) {
		return []float64{1}
	}
	return nil
}

func (t *Target) pieceSquareTableMeasurements(ctx *evalContext, side types.Color) []float64 {
	var out []float64
	for bb := ctx.side(side).pieces[t.PieceType]; bb != types.BbZero; {
		sq, rest := bb.PopLsb()
		bb = rest
		idx := sq
		if side == types.Black {
			idx = sq ^ 56
		}
		out = append(out, t.Table[idx])
	}
	return out
}
