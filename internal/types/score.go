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

import (
	"strconv"
	"strings"
)

// Value is a centipawn score, from the perspective it was computed for.
type Value int32

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	ValueInf Value = 32_000
	ValueNA  Value = -ValueInf - 1

	ValueMate Value = 31_000

	// MaxDepth bounds both the iterative deepening loop and the
	// quiescence selective-depth extension.
	MaxDepth = 128

	// MateThreshold: any |value| above this is "forced mate" territory.
	MateThreshold = ValueMate - MaxDepth
)

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// IsMateScore reports whether v encodes a forced mate: its magnitude is
// strictly greater than MateThreshold (ValueMate - MaxDepth) and at most
// ValueMate. Spec TESTABLE PROPERTIES #7's shallow mates, scored above
// MATE-100, fall inside this band.
func (v Value) IsMateScore() bool {
	return abs32(int32(v)) > int32(MateThreshold) && abs32(int32(v)) <= int32(ValueMate)
}

// MateIn builds the "mate in N plies from root" score for the side that is
// about to be mated at the given ply (negative, closer mates score further
// from zero).
func MateIn(ply int) Value {
	return -ValueMate + Value(ply)
}

func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v == ValueNA:
		sb.WriteString("N/A")
	case v.IsMateScore():
		sb.WriteString("mate ")
		if v < 0 {
			sb.WriteString("-")
		}
		pliesToMate := int(ValueMate) - int(abs32(int32(v)))
		sb.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}

// Score holds a midgame and an endgame centipawn value; Blend combines them
// by a caller-supplied game-phase factor. No evaluator in this repository
// uses it.
type Score struct {
	MidGame Value
	EndGame Value
}

func (s *Score) Add(o Score) {
	s.MidGame += o.MidGame
	s.EndGame += o.EndGame
}

func (s *Score) Sub(o Score) {
	s.MidGame -= o.MidGame
	s.EndGame -= o.EndGame
}

// Blend combines mid/endgame by a [0,1] game phase factor, 1 == full
// midgame material on the board.
func (s Score) Blend(phaseFactor float64) Value {
	return Value(float64(s.MidGame)*phaseFactor + float64(s.EndGame)*(1.0-phaseFactor))
}
