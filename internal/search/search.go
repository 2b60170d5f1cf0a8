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

// Package search implements alpha-beta game tree search over a Position:
// iterative deepening with a transposition table, null-move pruning, late
// move reductions, principal variation search and quiescence, on top of a
// pluggable evaluator. A Search owns its killer-move and history-heuristic
// tables exclusively - nothing outside this package reads or writes them.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/ASmolyar/chess-ai-sub001/internal/evaluator"
	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/transpositiontable"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("search")
}

// Search runs one engine's alpha-beta search. It is not safe for concurrent
// StartSearch calls from multiple goroutines at once - callers serialize
// through IsSearching/WaitWhileSearching, mirroring the engine's own
// single-search-at-a-time contract.
type Search struct {
	tt  *transpositiontable.Table
	eval evaluator.Evaluator

	runningSem *semaphore.Weighted
	isRunning  int32

	stopFlag  int32
	startTime time.Time
	limits    Limits

	nodes uint64
	stats Statistics

	killers *killerTable
	history *historyTable

	aborted       bool
	rootBestMove  types.Move
	rootBestValue types.Value

	lastResult Result
	mu         sync.Mutex

	// Tunables, exposed so a config layer can disable a technique for
	// testing or diagnosis without rebuilding the search.
	UseNullMove bool
	UseLMR      bool
	UsePVS      bool
}

// NewSearch builds a Search against tt and eval. The evaluator may be
// swapped later via SetEvaluator; the table stays fixed.
func NewSearch(tt *transpositiontable.Table, eval evaluator.Evaluator) *Search {
	return &Search{
		tt:         tt,
		eval:       eval,
		runningSem: semaphore.NewWeighted(1),
		killers:    &killerTable{},
		history:    &historyTable{},
		UseNullMove: true,
		UseLMR:      true,
		UsePVS:      true,
	}
}

// SetEvaluator swaps the installed evaluator between searches.
func (s *Search) SetEvaluator(eval evaluator.Evaluator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eval = eval
}

// NewGame resets everything that must not leak across unrelated games: the
// transposition table, killer moves and history scores.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.killers.reset()
	s.history.reset()
}

// IsSearching reports whether a StartSearch call is currently running.
func (s *Search) IsSearching() bool {
	return atomic.LoadInt32(&s.isRunning) == 1
}

// StopSearch signals the running search to stop at its next check point.
// It is idempotent and safe to call from any goroutine, including when no
// search is running.
func (s *Search) StopSearch() {
	atomic.StoreInt32(&s.stopFlag, 1)
}

// WaitWhileSearching blocks until the current search (if any) has returned.
func (s *Search) WaitWhileSearching() {
	_ = s.runningSem.Acquire(context.Background(), 1)
	s.runningSem.Release(1)
}

// LastResult returns the most recently completed search's Result.
func (s *Search) LastResult() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// Statistics returns a snapshot of the counters from the most recent (or
// currently running) search.
func (s *Search) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// StartSearch runs the search to completion on the calling goroutine and
// returns its Result. It blocks if another search on this Search is still
// running. Spec 4.6's root entry point: search(position) with limits.
func (s *Search) StartSearch(p *position.Position, limits Limits) Result {
	if err := s.runningSem.Acquire(context.Background(), 1); err != nil {
		log.Errorf("search: failed to acquire run semaphore: %v", err)
		return Result{}
	}
	atomic.StoreInt32(&s.isRunning, 1)
	atomic.StoreInt32(&s.stopFlag, 0)
	defer func() {
		atomic.StoreInt32(&s.isRunning, 0)
		s.runningSem.Release(1)
	}()

	s.limits = limits.normalized()
	s.startTime = time.Now()
	s.nodes = 0
	s.stats.reset()
	s.tt.NewSearch()

	result := s.iterativeDeepening(p)

	s.mu.Lock()
	s.lastResult = result
	s.stats.Nodes = s.nodes
	s.mu.Unlock()

	log.Debugf("search finished: depth=%d score=%s move=%s nodes=%s time=%s",
		result.Depth, result.BestValue, result.BestMove, statsOut.Sprintf("%d", result.Nodes), result.Time)
	return result
}

// shouldStop reports whether the running search must return immediately:
// an explicit StopSearch call, or the time budget has elapsed.
func (s *Search) shouldStop() bool {
	if atomic.LoadInt32(&s.stopFlag) == 1 {
		return true
	}
	if s.limits.Infinite {
		return false
	}
	if s.limits.MaxMillis > 0 && time.Since(s.startTime) >= time.Duration(s.limits.MaxMillis)*time.Millisecond {
		return true
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	return false
}

// softTimeExpired reports whether the soft time budget has elapsed, used
// between iterative-deepening iterations to decide whether to start one more.
func (s *Search) softTimeExpired() bool {
	if s.limits.Infinite || s.limits.SoftMillis <= 0 {
		return false
	}
	return time.Since(s.startTime) >= time.Duration(s.limits.SoftMillis)*time.Millisecond
}
