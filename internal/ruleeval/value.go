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
	"math"
)

// ValueKind discriminates the Value variants of spec 4.5.1. Named
// ValueSpec (not Value) in this package to avoid colliding with
// internal/types.Value, the centipawn score type every other package in
// this repository dot-imports types for.
type ValueKind string

const (
	ValueFixed       ValueKind = "fixed"
	ValueScaled      ValueKind = "scaled"
	ValueConditional ValueKind = "conditional"
	ValueFormula     ValueKind = "formula"
)

// Shape selects the scaling function applied to a measurement by a scaled value.
type Shape string

const (
	ShapeLinear      Shape = "linear"
	ShapeSquareRoot  Shape = "square-root"
	ShapeQuadratic   Shape = "quadratic"
	ShapeExponential Shape = "exponential"
)

func applyShape(shape Shape, x float64) float64 {
	switch shape {
	case ShapeSquareRoot:
		if x < 0 {
			return -math.Sqrt(-x)
		}
		return math.Sqrt(x)
	case ShapeQuadratic:
		if x < 0 {
			return -x * x
		}
		return x * x
	case ShapeExponential:
		return math.Exp2(x)
	case ShapeLinear:
		fallthrough
	default:
		return x
	}
}

// ConditionalRange is one piecewise-constant bucket of a conditional
// value: measurements <= UpTo map to V, in ascending UpTo order.
type ConditionalRange struct {
	UpTo float64 `json:"up_to"`
	V    float64 `json:"v"`
}

// ValueSpec converts a measurement to centipawns, per spec 4.5.1.
type ValueSpec struct {
	Kind ValueKind `json:"type"`

	// fixed
	V float64 `json:"v,omitempty"`

	// scaled
	Base       float64 `json:"base,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Shape      Shape   `json:"shape,omitempty"`

	// conditional
	Ranges  []ConditionalRange `json:"ranges,omitempty"`
	Default float64            `json:"default,omitempty"`

	// formula
	Expr string `json:"expr,omitempty"`

	compiledFormula *formulaExpr
}

// Validate reports a descriptive error for a structurally unsound value,
// and - for formula values - compiles the expression once so later Apply
// calls never re-parse it.
func (v *ValueSpec) Validate() error {
	switch v.Kind {
	case ValueFixed:
	case ValueScaled:
		switch v.Shape {
		case ShapeLinear, ShapeSquareRoot, ShapeQuadratic, ShapeExponential:
		default:
			return fmt.Errorf("ruleeval: unknown scaled value shape %q", v.Shape)
		}
	case ValueConditional:
		for i := 1; i < len(v.Ranges); i++ {
			if v.Ranges[i].UpTo < v.Ranges[i-1].UpTo {
				return fmt.Errorf("ruleeval: conditional value ranges must be ascending by up_to")
			}
		}
	case ValueFormula:
		expr, err := parseFormula(v.Expr)
		if err != nil {
			return fmt.Errorf("ruleeval: formula value: %w", err)
		}
		v.compiledFormula = expr
	default:
		return fmt.Errorf("ruleeval: unknown value kind %q", v.Kind)
	}
	return nil
}

// apply converts one measurement to centipawns.
func (v *ValueSpec) apply(measurement float64) float64 {
	switch v.Kind {
	case ValueFixed:
		return v.V
	case ValueScaled:
		return v.Base * applyShape(v.Shape, measurement) * v.Multiplier
	case ValueConditional:
		for _, r := range v.Ranges {
			if measurement <= r.UpTo {
				return r.V
			}
		}
		return v.Default
	case ValueFormula:
		if v.compiledFormula == nil {
			expr, err := parseFormula(v.Expr)
			if err != nil {
				return 0
			}
			v.compiledFormula = expr
		}
		return v.compiledFormula.eval(measurement)
	default:
		return 0
	}
}
