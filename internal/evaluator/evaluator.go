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

// Package evaluator holds the position-scoring contract every search
// consults, and the two simplest implementations of it (material-only and
// the hard-wired parametric classical evaluator). The declarative
// rule-composed evaluator lives in the sibling internal/ruleeval package
// and implements the same Evaluator interface.
package evaluator

import (
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// Evaluator scores a position from the side-to-move's perspective and
// exposes the piece values it uses, which SEE and move ordering borrow
// regardless of which evaluator is installed.
type Evaluator interface {
	Evaluate(p *position.Position) Value
	PieceValue(pt PieceType) Value
	Name() string
}

// MaterialValues is a configurable P/N/B/R/Q value table, shared by
// MaterialEvaluator and as the material term of ParametricEvaluator.
type MaterialValues [PieceTypeLength]Value

// DefaultMaterialValues are the spec 4.5.4 material-only weights.
var DefaultMaterialValues = MaterialValues{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// MaterialEvaluator scores purely by piece count times fixed value,
// own minus opponent (spec 4.5.4).
type MaterialEvaluator struct {
	Values MaterialValues
}

// NewMaterialEvaluator returns a MaterialEvaluator using DefaultMaterialValues.
func NewMaterialEvaluator() *MaterialEvaluator {
	return &MaterialEvaluator{Values: DefaultMaterialValues}
}

func (e *MaterialEvaluator) Name() string { return "material" }

func (e *MaterialEvaluator) PieceValue(pt PieceType) Value { return e.Values[pt] }

func (e *MaterialEvaluator) Evaluate(p *position.Position) Value {
	us := p.SideToMove()
	them := us.Opposite()
	var total Value
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		diff := Value(p.PiecesBb(us, pt).PopCount()-p.PiecesBb(them, pt).PopCount()) * e.Values[pt]
		total += diff
	}
	return total
}
