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

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsOut = message.NewPrinter(language.English)

// Statistics accumulates the counters getInfo() reports plus a handful of
// internal cut/prune tallies worth keeping around for diagnosing search
// quality. It is reset at the start of every StartSearch call and is owned
// exclusively by the Search that produced it - nothing outside this package
// writes to it.
type Statistics struct {
	Nodes          uint64
	QNodes         uint64
	CurrentDepth   int
	CurrentSelDepth int

	TTHits      uint64
	TTMisses    uint64
	TTCuts      uint64
	TTMoveUsed  uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	NullMoveCuts uint64
	LmrReductions uint64
	LmrResearches uint64
	PvsResearches uint64

	Checkmates uint64
	Stalemates uint64
}

func (s *Statistics) String() string {
	return statsOut.Sprintf("%+v", *s)
}

func (s *Statistics) reset() {
	*s = Statistics{}
}
