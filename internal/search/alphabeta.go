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
	"time"

	"github.com/ASmolyar/chess-ai-sub001/internal/movegen"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/transpositiontable"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// qSelectiveDepthCap is the ply, counted from the root, at which quiescence
// stops extending and returns its stand-pat score - a hard selective-depth
// limit, not a tunable.
const qSelectiveDepthCap = types.MaxDepth

// iterativeDeepening is the root entry point: it repeats negamax at
// increasing depth, publishing a fresh Result after each completed
// iteration, until a stop condition from spec 4.6 fires.
func (s *Search) iterativeDeepening(p *position.Position) Result {
	root := p.Clone()

	var rootMoves types.MoveList
	movegen.GenerateLegal(root, movegen.All, &rootMoves)
	if rootMoves.Len() == 0 {
		if root.InCheck() {
			return Result{BestMove: types.MoveNone, BestValue: -types.ValueMate, Time: time.Since(s.startTime)}
		}
		return Result{BestMove: types.MoveNone, BestValue: types.ValueDraw, Time: time.Since(s.startTime)}
	}

	var best Result
	for depth := 1; depth <= s.limits.MaxDepth; depth++ {
		s.aborted = false
		s.rootBestMove = types.MoveNone
		s.rootBestValue = types.ValueNA
		s.stats.CurrentSelDepth = depth

		score := s.negamax(root, depth, 0, -types.ValueInf, types.ValueInf)

		if s.aborted && depth > 1 {
			break
		}

		bestMove := s.rootBestMove
		if bestMove.IsNone() {
			bestMove = rootMoves.At(0)
		}
		best = Result{
			BestMove:  bestMove,
			BestValue: score,
			Depth:     depth,
			SelDepth:  s.stats.CurrentSelDepth,
			Nodes:     s.nodes,
			Time:      time.Since(s.startTime),
		}
		s.stats.CurrentDepth = depth

		if score.IsMateScore() {
			break
		}
		if s.shouldStop() || s.softTimeExpired() {
			break
		}
	}
	return best
}

// checkAbort polls the stop condition every so often (node-count gated, so
// the check itself is cheap) and latches s.aborted once it fires - every
// frame of negamax/qsearch checks s.aborted immediately after a recursive
// call and unwinds without touching the transposition table.
func (s *Search) checkAbort() bool {
	if s.aborted {
		return true
	}
	if s.nodes&2047 == 0 && s.shouldStop() {
		s.aborted = true
	}
	return s.aborted
}

func hasNonPawnMaterial(p *position.Position, c types.Color) bool {
	return (p.PiecesBb(c, types.Knight) | p.PiecesBb(c, types.Bishop) |
		p.PiecesBb(c, types.Rook) | p.PiecesBb(c, types.Queen)) != types.BbZero
}

// negamax is the core alpha-beta node, per spec 4.6: draw/terminal checks,
// TT probe and cutoff, null-move pruning, ordered move loop with PVS/LMR,
// and a TT store of whatever bound was established.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta types.Value) types.Value {
	if ply > s.stats.CurrentSelDepth {
		s.stats.CurrentSelDepth = ply
	}

	if ply > 0 && p.IsDraw() {
		return types.ValueDraw
	}

	if depth <= 0 {
		return s.qsearch(p, ply, alpha, beta)
	}

	if s.checkAbort() {
		return alpha
	}

	originalAlpha := alpha
	key := p.ZobristKey()

	var ttMove types.Move
	if entry, ok := s.tt.Probe(key, ply); ok {
		s.stats.TTHits++
		ttMove = entry.BestMove()
		if ply > 0 && int(entry.Depth()) >= depth {
			switch entry.Flag() {
			case transpositiontable.FlagExact:
				s.stats.TTCuts++
				return entry.Score()
			case transpositiontable.FlagLower:
				if entry.Score() >= beta {
					s.stats.TTCuts++
					return entry.Score()
				}
			case transpositiontable.FlagUpper:
				if entry.Score() <= alpha {
					s.stats.TTCuts++
					return entry.Score()
				}
			}
		}
	} else {
		s.stats.TTMisses++
	}

	us := p.SideToMove()
	inCheck := p.InCheck()

	if s.UseNullMove && ply > 0 && !inCheck && depth >= 3 && beta < types.MateThreshold && hasNonPawnMaterial(p, us) {
		staticEval := s.evaluate(p)
		if staticEval >= beta {
			r := 2
			if depth >= 6 {
				r = 3
			}
			p.DoNullMove()
			score := -s.negamax(p, depth-r-1, ply+1, -beta, -beta+1)
			p.UndoNullMove()
			if s.aborted {
				return alpha
			}
			if score >= beta {
				s.stats.NullMoveCuts++
				return score
			}
		}
	}

	var ml types.MoveList
	movegen.Generate(p, movegen.All, &ml)
	ordered := orderMoves(p, &ml, ttMove, ply, s.killers, s.history)

	bestScore := -types.ValueInf
	bestMove := types.MoveNone
	moveCount := 0

	for _, sm := range ordered {
		m := sm.m
		if !p.IsLegal(m) {
			continue
		}
		moveCount++
		capture := isCapture(p, m)

		p.DoMove(m)
		s.nodes++
		givesCheck := p.InCheck()

		extension := 0
		if givesCheck {
			extension = 1
		}
		newDepth := depth - 1 + extension

		var score types.Value
		switch {
		case moveCount == 1:
			score = -s.negamax(p, newDepth, ply+1, -beta, -alpha)
		default:
			reduction := 0
			if s.UseLMR && extension == 0 && depth >= 3 && moveCount > 4 && !capture && !s.killers.isKiller(ply, m) {
				reduction = 1
				if moveCount > 10 {
					reduction = 2
				}
			}
			score = -s.negamax(p, newDepth-reduction, ply+1, -alpha-1, -alpha)
			if s.aborted {
				p.UndoMove()
				return alpha
			}
			if score > alpha && reduction > 0 {
				s.stats.LmrResearches++
				score = -s.negamax(p, newDepth, ply+1, -alpha-1, -alpha)
			}
			if !s.aborted && s.UsePVS && score > alpha && score < beta {
				s.stats.PvsResearches++
				score = -s.negamax(p, newDepth, ply+1, -beta, -alpha)
			}
		}
		p.UndoMove()

		if s.aborted {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if ply == 0 {
				s.rootBestMove = m
				s.rootBestValue = score
			}
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			if moveCount == 1 {
				s.stats.BetaCuts1st++
			}
			if !capture {
				s.killers.add(ply, m)
				s.history.bump(us, m, depth)
			}
			break
		}
	}

	if moveCount == 0 {
		if inCheck {
			s.stats.Checkmates++
			return types.MateIn(ply)
		}
		s.stats.Stalemates++
		return types.ValueDraw
	}

	flag := transpositiontable.FlagExact
	switch {
	case bestScore <= originalAlpha:
		flag = transpositiontable.FlagUpper
	case bestScore >= beta:
		flag = transpositiontable.FlagLower
	}
	s.tt.Store(key, bestMove, bestScore, int8(depth), flag, ply)

	return bestScore
}

// qsearch extends a leaf with captures and queen promotions only, per spec
// 4.6: stand-pat bound, SEE>=0 filtered moves, hard selective-depth cap.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta types.Value) types.Value {
	if ply > s.stats.CurrentSelDepth {
		s.stats.CurrentSelDepth = ply
	}
	if s.checkAbort() {
		return alpha
	}
	s.nodes++

	standPat := s.evaluate(p)
	if standPat >= beta {
		s.stats.StandpatCuts++
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	bestScore := standPat

	if ply >= qSelectiveDepthCap {
		return bestScore
	}

	var ml types.MoveList
	movegen.Generate(p, movegen.CapturesOnly, &ml)
	ordered := orderMoves(p, &ml, types.MoveNone, ply, s.killers, s.history)

	for _, sm := range ordered {
		m := sm.m
		if !p.IsLegal(m) {
			continue
		}
		if see(p, m) < 0 {
			continue
		}

		p.DoMove(m)
		score := -s.qsearch(p, ply+1, -beta, -alpha)
		p.UndoMove()

		if s.aborted {
			return alpha
		}

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore
}

// evaluate scores p through the installed evaluator, from the side to
// move's perspective - exactly what alpha-beta's sign convention needs.
func (s *Search) evaluate(p *position.Position) types.Value {
	return s.eval.Evaluate(p)
}
