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

// Package transpositiontable implements a fixed, power-of-two sized
// transposition table for one search. A Table is not safe for concurrent
// use - each Engine/Search owns its own instance (spec 5's per-request
// isolation model), so there is no internal locking to pay for.
package transpositiontable

import (
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

var log *logging.Logger
var out = message.NewPrinter(language.English)

func init() {
	log = myLogging.GetLog("transpositiontable")
}

// Flag records which bound a stored score represents.
type Flag uint8

const (
	// FlagNone marks an empty slot.
	FlagNone Flag = iota
	// FlagExact: alpha < score < beta, the true minimax value.
	FlagExact
	// FlagLower: score >= beta, a fail-high / beta cutoff.
	FlagLower
	// FlagUpper: score <= alpha, a fail-low.
	FlagUpper
)

// entrySize is the in-memory footprint of one slot, used to size the
// table to the requested byte budget.
var entrySize = unsafe.Sizeof(Entry{})

// Entry is one transposition table slot.
type Entry struct {
	key        Key
	bestMove   Move
	score      Value
	depth      int8
	flag       Flag
	generation uint8
}

func (e *Entry) Key() Key         { return e.key }
func (e *Entry) BestMove() Move   { return e.bestMove }
func (e *Entry) Score() Value     { return e.score }
func (e *Entry) Depth() int8      { return e.depth }
func (e *Entry) Flag() Flag       { return e.flag }
func (e *Entry) Generation() uint8 { return e.generation }

// Stats counts table activity for UCI-style info reporting.
type Stats struct {
	Probes, Hits, Misses, Stores, Collisions, Overwrites uint64
}

// Table is the transposition table proper: a flat, power-of-two sized
// array of Entry, indexed by key & (len-1).
type Table struct {
	data       []Entry
	mask       uint64
	generation uint8
	Stats      Stats
}

// NewTable allocates a table sized to fit within sizeInMB megabytes,
// rounding the entry count down to the nearest power of two.
func NewTable(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table for a new memory budget, clearing all
// entries. Not safe to call concurrently with search.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB < 0 {
		sizeInMB = 0
	}
	budgetBytes := uint64(sizeInMB) * 1024 * 1024
	entries := budgetBytes / uint64(entrySize)
	count := uint64(1)
	for count*2 <= entries && count < 1<<30 {
		count *= 2
	}
	if entries == 0 {
		count = 0
	}
	t.data = make([]Entry, count)
	if count > 0 {
		t.mask = count - 1
	} else {
		t.mask = 0
	}
	log.Info(out.Sprintf("transposition table resized to %d MB, %d entries (%d bytes each)",
		sizeInMB, count, entrySize))
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry for key and true, or a zero Entry and false on a
// miss - either the slot is empty or holds a different position (spec
// 4.4). The returned score has any mate-distance offset already reversed
// for the given search ply.
func (t *Table) Probe(key Key, ply int) (Entry, bool) {
	if len(t.data) == 0 {
		return Entry{}, false
	}
	t.Stats.Probes++
	e := t.data[t.index(key)]
	if e.flag == FlagNone || e.key != key {
		t.Stats.Misses++
		return Entry{}, false
	}
	t.Stats.Hits++
	e.score = scoreFromTt(e.score, ply)
	return e, true
}

// Store writes an entry for key, following the replacement policy of spec
// 4.4: write when the slot is empty, the stored key differs, the new
// depth is at least the stored depth, or the stored generation is stale.
// Mate scores are converted from "mate in N from root" to "mate in N from
// this node" before storing.
func (t *Table) Store(key Key, move Move, score Value, depth int8, flag Flag, ply int) {
	if len(t.data) == 0 {
		return
	}
	idx := t.index(key)
	e := &t.data[idx]

	if e.flag == FlagNone {
		t.Stats.Stores++
		*e = Entry{key: key, bestMove: move, score: scoreToTt(score, ply), depth: depth, flag: flag, generation: t.generation}
		return
	}
	if e.key != key {
		t.Stats.Collisions++
	}
	if e.key != key || depth >= e.depth || e.generation != t.generation {
		t.Stats.Stores++
		t.Stats.Overwrites++
		*e = Entry{key: key, bestMove: move, score: scoreToTt(score, ply), depth: depth, flag: flag, generation: t.generation}
	}
}

// NewSearch bumps the generation counter so Store's replacement policy can
// tell entries from the current search apart from stale ones left over
// from a previous one, without clearing the table.
func (t *Table) NewSearch() {
	t.generation++
}

// Clear zeros every entry and resets statistics.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.generation = 0
	t.Stats = Stats{}
}

// Hashfull reports table occupancy in permille, UCI-style.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	sampled := len(t.data)
	if sampled > 1000 {
		sampled = 1000
	}
	used := 0
	for i := 0; i < sampled; i++ {
		if t.data[i].flag != FlagNone {
			used++
		}
	}
	return used * 1000 / sampled
}

// scoreToTt offsets a mate score from "distance from root" to "distance
// from this node" before storing, so the stored value is meaningful when
// probed again at a different ply via a different path (spec 4.4).
func scoreToTt(score Value, ply int) Value {
	switch {
	case score >= MateThreshold:
		return score + Value(ply)
	case score <= -MateThreshold:
		return score - Value(ply)
	default:
		return score
	}
}

// scoreFromTt reverses scoreToTt on probe.
func scoreFromTt(score Value, ply int) Value {
	switch {
	case score >= MateThreshold:
		return score - Value(ply)
	case score <= -MateThreshold:
		return score + Value(ply)
	default:
		return score
	}
}
