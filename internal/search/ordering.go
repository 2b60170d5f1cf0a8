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
	"sort"

	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// killerTable holds up to two quiet moves per ply that caused a beta cutoff
// without being captures - tried early at the same ply in sibling nodes,
// per spec 4.6 step 5. Search owns this table exclusively; movegen never
// sees it.
type killerTable struct {
	moves [types.MaxDepth + 1][2]types.Move
}

func (k *killerTable) add(ply int, m types.Move) {
	if ply < 0 || ply > types.MaxDepth {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m types.Move) bool {
	if ply < 0 || ply > types.MaxDepth {
		return false
	}
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

func (k *killerTable) reset() {
	for i := range k.moves {
		k.moves[i][0] = types.MoveNone
		k.moves[i][1] = types.MoveNone
	}
}

// historyTable scores quiet moves by the beta cutoffs they have caused
// anywhere in the tree (each weighted by depth squared), indexed by side/from/to so it
// survives across plies and iterations within one search.
type historyTable struct {
	score [2][64][64]int32
}

func (h *historyTable) bump(side types.Color, m types.Move, depth int) {
	v := int32(depth * depth)
	h.score[side][m.From()][m.To()] += v
	if h.score[side][m.From()][m.To()] > 1<<24 {
		h.halve()
	}
}

func (h *historyTable) halve() {
	for c := 0; c < 2; c++ {
		for f := 0; f < 64; f++ {
			for t := 0; t < 64; t++ {
				h.score[c][f][t] /= 2
			}
		}
	}
}

func (h *historyTable) of(side types.Color, m types.Move) int32 {
	return h.score[side][m.From()][m.To()]
}

func (h *historyTable) reset() {
	h.score = [2][64][64]int32{}
}

// Ordering tiers, highest first. A move's sort key is tier*1_000_000 plus a
// tiebreak within the tier (capture MVV-LVA value, or history score).
const (
	tierTT = 6
	tierGoodCapture = 5
	tierPromotion = 4
	tierKiller = 3
	tierQuiet = 2
	tierBadCapture = 1
)

type scoredMove struct {
	m     types.Move
	score int64
}

// isCapture reports whether m captures a piece on p (en passant included).
func isCapture(p *position.Position, m types.Move) bool {
	if m.MoveType() == types.EnPassant {
		return true
	}
	return !p.PieceOn(m.To()).IsNone()
}

// orderMoves scores every pseudo-legal move in ml for search at ply, and
// returns them sorted best-first: the transposition-table move, then
// SEE-positive captures by MVV-LVA, then non-capturing queen promotions,
// then killers, then quiet moves (under-promotions included) by history score, then SEE-negative captures last.
func orderMoves(p *position.Position, ml *types.MoveList, ttMove types.Move, ply int, killers *killerTable, history *historyTable) []scoredMove {
	n := ml.Len()
	out := make([]scoredMove, n)
	us := p.SideToMove()
	for i := 0; i < n; i++ {
		m := ml.At(i)
		out[i] = scoredMove{m: m, score: scoreMove(p, m, ttMove, ply, killers, history, us)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

func scoreMove(p *position.Position, m types.Move, ttMove types.Move, ply int, killers *killerTable, history *historyTable, us types.Color) int64 {
	if !ttMove.IsNone() && m == ttMove {
		return tierTT * 1_000_000
	}

	if isCapture(p, m) {
		victim := p.PieceOn(m.To())
		victimValue := 100
		if m.MoveType() == types.EnPassant {
			victimValue = types.Pawn.SeeValue()
		} else if !victim.IsNone() {
			victimValue = victim.TypeOf().SeeValue()
		}
		attackerValue := p.PieceOn(m.From()).TypeOf().SeeValue()
		mvvLva := int64(victimValue*16 - attackerValue)
		if see(p, m) >= 0 {
			return tierGoodCapture*1_000_000 + mvvLva
		}
		return tierBadCapture*1_000_000 + mvvLva
	}

	if m.MoveType() == types.Promotion && m.PromotionType() == types.Queen {
		return tierPromotion * 1_000_000
	}

	if killers.isKiller(ply, m) {
		return tierKiller * 1_000_000
	}

	return tierQuiet*1_000_000 + int64(history.of(us, m))
}
