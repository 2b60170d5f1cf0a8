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

import "time"

// defaultSearchTime is the budget applied when a caller leaves both
// MaxDepth and MaxMillis at zero.
const defaultSearchTime = 5 * time.Second

// Limits controls how far and how long one StartSearch call may run.
type Limits struct {
	// MaxDepth bounds the iterative deepening loop; zero means unbounded
	// (subject to MaxDepth in internal/types and to time controls).
	MaxDepth int
	// MaxMillis is a hard wall-clock budget for the whole search; zero
	// means no hard cap (subject to the depth limit).
	MaxMillis int64
	// SoftMillis, when set, lets iterative deepening stop after completing
	// an iteration once this much time has elapsed, without waiting for
	// MaxMillis - used to avoid starting a doomed-to-be-aborted deeper
	// iteration when time is short.
	SoftMillis int64
	// Infinite disables all time control; the search runs until StopSearch
	// is called or MaxDepth is exhausted.
	Infinite bool
	// Nodes, when non-zero, stops the search once this many nodes have
	// been visited.
	Nodes uint64
}

// normalized applies the spec 4.6 default: when both MaxDepth and
// MaxMillis are zero (and the search is not Infinite), a 5s budget applies.
func (l Limits) normalized() Limits {
	if !l.Infinite && l.MaxDepth == 0 && l.MaxMillis == 0 {
		l.MaxMillis = defaultSearchTime.Milliseconds()
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = 128
	}
	return l
}
