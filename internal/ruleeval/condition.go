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

	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// ConditionKind discriminates the Condition variants of spec 4.5.1.
// Condition itself is a flat, JSON-tagged struct rather than an interface
// hierarchy - the fields irrelevant to a given Kind are simply left zero -
// which lets a Rule decode straight off encoding/json without a custom
// UnmarshalJSON, the same way this repository's config package decodes
// TOML straight into plain structs.
type ConditionKind string

const (
	ConditionAlways        ConditionKind = "always"
	ConditionGamePhase     ConditionKind = "game-phase"
	ConditionMaterial      ConditionKind = "material"
	ConditionCastling      ConditionKind = "castling"
	ConditionPieceDistance ConditionKind = "piece-distance"
	ConditionLogical       ConditionKind = "logical"
)

// Who selects which side's pieces a material/piece-distance condition or
// target counts against.
type Who string

const (
	WhoMy       Who = "my"
	WhoOpponent Who = "opponent"
	WhoBoth     Who = "both"
)

// Cmp is a comparison operator used by material and piece-distance conditions.
type Cmp string

const (
	CmpEq Cmp = "="
	CmpGe Cmp = ">="
	CmpLe Cmp = "<="
	CmpGt Cmp = ">"
	CmpLt Cmp = "<"
)

func compare(cmp Cmp, a, b int) bool {
	switch cmp {
	case CmpEq:
		return a == b
	case CmpGe:
		return a >= b
	case CmpLe:
		return a <= b
	case CmpGt:
		return a > b
	case CmpLt:
		return a < b
	default:
		return false
	}
}

// CastlingStatus is the status vocabulary of the castling condition.
type CastlingStatus string

const (
	HasCastledKingside  CastlingStatus = "has-castled-kingside"
	HasCastledQueenside CastlingStatus = "has-castled-queenside"
	HasCastledEither    CastlingStatus = "has-castled-either"
	HasNotCastled       CastlingStatus = "has-not-castled"
	CanStillCastle      CastlingStatus = "can-still-castle"
	CannotCastle        CastlingStatus = "cannot-castle"
	LostRights          CastlingStatus = "lost-rights"
)

// DistanceMetric selects Chebyshev or Manhattan distance for the
// piece-distance condition and target.
type DistanceMetric string

const (
	Chebyshev DistanceMetric = "chebyshev"
	Manhattan DistanceMetric = "manhattan"
)

// LogicalOp folds child conditions together.
type LogicalOp string

const (
	LogicalAnd LogicalOp = "and"
	LogicalOr  LogicalOp = "or"
	LogicalNot LogicalOp = "not"
)

// PieceRef names one piece instance for the piece-distance family: the
// side it belongs to, its type, and - when more than one piece of that
// type exists for that side - which one (0-indexed by square, ascending).
// Kings and other at-most-one-per-side types always use Index 0.
type PieceRef struct {
	Who       Who             `json:"who"`
	PieceType types.PieceType `json:"piece_type"`
	Index     int             `json:"index"`
}

func (r PieceRef) resolve(ctx *evalContext, side types.Color) (types.Square, bool) {
	c := sideFor(r.Who, side)
	bb := ctx.side(c).pieces[r.PieceType]
	idx := r.Index
	for bb != types.BbZero {
		sq, rest := bb.PopLsb()
		bb = rest
		if idx == 0 {
			return sq, true
		}
		idx--
	}
	return types.SqNone, false
}

func sideFor(who Who, evaluatedSide types.Color) types.Color {
	if who == WhoOpponent {
		return evaluatedSide.Opposite()
	}
	return evaluatedSide
}

// Condition decides whether a rule contributes for a given evaluation
// side, per spec 4.5.1.
type Condition struct {
	Kind ConditionKind `json:"type"`

	// game-phase
	Phase Phase `json:"phase,omitempty"`

	// material
	PieceType types.PieceType `json:"piece_type,omitempty"`
	Who       Who             `json:"who,omitempty"`
	Cmp       Cmp             `json:"cmp,omitempty"`
	N         int             `json:"n,omitempty"`

	// castling
	CastlingStatus CastlingStatus `json:"castling_status,omitempty"`

	// piece-distance
	Metric   DistanceMetric `json:"metric,omitempty"`
	P1       PieceRef       `json:"p1,omitempty"`
	P2       PieceRef       `json:"p2,omitempty"`
	Distance int            `json:"distance,omitempty"`

	// logical
	Logical  LogicalOp   `json:"logical_op,omitempty"`
	Children []Condition `json:"children,omitempty"`
}

// Validate reports a descriptive error if the condition is structurally
// unsound (unknown kind, missing logical children, bad comparator), so
// configure-time rejection happens before any Evaluate call.
func (c *Condition) Validate() error {
	switch c.Kind {
	case ConditionAlways:
	case ConditionGamePhase:
	case ConditionMaterial:
		if !validCmp(c.Cmp) {
			return fmt.Errorf("ruleeval: material condition has invalid cmp %q", c.Cmp)
		}
		if !validWho(c.Who) {
			return fmt.Errorf("ruleeval: material condition has invalid who %q", c.Who)
		}
	case ConditionCastling:
	case ConditionPieceDistance:
		if !validCmp(c.Cmp) {
			return fmt.Errorf("ruleeval: piece-distance condition has invalid cmp %q", c.Cmp)
		}
		if !validWho(c.P1.Who) || !validWho(c.P2.Who) {
			return fmt.Errorf("ruleeval: piece-distance condition has an invalid piece reference")
		}
	case ConditionLogical:
		if c.Logical == LogicalNot && len(c.Children) != 1 {
			return fmt.Errorf("ruleeval: logical NOT needs exactly one child, got %d", len(c.Children))
		}
		if len(c.Children) == 0 {
			return fmt.Errorf("ruleeval: logical condition has no children")
		}
		for i := range c.Children {
			if err := c.Children[i].Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("ruleeval: unknown condition kind %q", c.Kind)
	}
	return nil
}

func validWho(who Who) bool {
	switch who {
	case WhoMy, WhoOpponent, WhoBoth:
		return true
	default:
		return false
	}
}

func validCmp(cmp Cmp) bool {
	switch cmp {
	case CmpEq, CmpGe, CmpLe, CmpGt, CmpLt:
		return true
	default:
		return false
	}
}

// evaluate reports whether c holds for side in ctx.
func (c *Condition) evaluate(ctx *evalContext, side types.Color) bool {
	switch c.Kind {
	case ConditionAlways:
		return true
	case ConditionGamePhase:
		return ctx.phase == c.Phase
	case ConditionMaterial:
		return c.evaluateMaterial(ctx, side)
	case ConditionCastling:
		return c.evaluateCastling(ctx, side)
	case ConditionPieceDistance:
		return c.evaluatePieceDistance(ctx, side)
	case ConditionLogical:
		return c.evaluateLogical(ctx, side)
	default:
		return false
	}
}

func (c *Condition) evaluateMaterial(ctx *evalContext, side types.Color) bool {
	count := 0
	switch c.Who {
	case WhoMy:
		count = ctx.side(side).pieces[c.PieceType].PopCount()
	case WhoOpponent:
		count = ctx.side(side.Opposite()).pieces[c.PieceType].PopCount()
	case WhoBoth:
		count = ctx.side(side).pieces[c.PieceType].PopCount() + ctx.side(side.Opposite()).pieces[c.PieceType].PopCount()
	}
	return compare(c.Cmp, count, c.N)
}

func (c *Condition) evaluateCastling(ctx *evalContext, side types.Color) bool {
	sc := ctx.side(side)
	cr := ctx.pos.CastlingRights()
	kingside, queenside := rightsFor(side)
	hasKingside := cr.Has(kingside)
	hasQueenside := cr.Has(queenside)
	homeSquare := homeKingSquare(side)

	castledKingside := sc.kingSq == castledKingsideSquare(side)
	castledQueenside := sc.kingSq == castledQueensideSquare(side)

	switch c.CastlingStatus {
	case HasCastledKingside:
		return castledKingside
	case HasCastledQueenside:
		return castledQueenside
	case HasCastledEither:
		return castledKingside || castledQueenside
	case HasNotCastled:
		return !castledKingside && !castledQueenside
	case CanStillCastle:
		return hasKingside || hasQueenside
	case CannotCastle:
		return !hasKingside && !hasQueenside
	case LostRights:
		return !hasKingside && !hasQueenside && sc.kingSq == homeSquare && !castledKingside && !castledQueenside
	default:
		return false
	}
}

func rightsFor(side types.Color) (kingside, queenside types.CastlingRights) {
	if side == types.White {
		return types.WhiteKingside, types.WhiteQueenside
	}
	return types.BlackKingside, types.BlackQueenside
}

func homeKingSquare(side types.Color) types.Square {
	if side == types.White {
		return types.SqE1
	}
	return types.SqE8
}

func castledKingsideSquare(side types.Color) types.Square {
	if side == types.White {
		return types.SqG1
	}
	return types.SqG8
}

func castledQueensideSquare(side types.Color) types.Square {
	if side == types.White {
		return types.SqC1
	}
	return types.SqC8
}

func (c *Condition) evaluatePieceDistance(ctx *evalContext, side types.Color) bool {
	sq1, ok1 := c.P1.resolve(ctx, side)
	sq2, ok2 := c.P2.resolve(ctx, side)
	if !ok1 || !ok2 {
		return false
	}
	d := 0
	if c.Metric == Manhattan {
		d = types.ManhattanDistance(sq1, sq2)
	} else {
		d = types.SquareDistance(sq1, sq2)
	}
	return compare(c.Cmp, d, c.Distance)
}

func (c *Condition) evaluateLogical(ctx *evalContext, side types.Color) bool {
	switch c.Logical {
	case LogicalNot:
		return len(c.Children) == 1 && !c.Children[0].evaluate(ctx, side)
	case LogicalOr:
		for i := range c.Children {
			if c.Children[i].evaluate(ctx, side) {
				return true
			}
		}
		return false
	case LogicalAnd:
		fallthrough
	default:
		for i := range c.Children {
			if !c.Children[i].evaluate(ctx, side) {
				return false
			}
		}
		return true
	}
}
