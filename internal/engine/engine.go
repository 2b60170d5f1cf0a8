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

// Package engine is the thin façade spec §6 describes: one Engine per
// request/game, owning an isolated Position, Search, TranspositionTable
// and Evaluator so that parallel callers never alias mutable state (spec
// §5). It never implements board or search logic itself - it only
// sequences calls into internal/position, internal/movegen,
// internal/search, internal/evaluator and internal/ruleeval, and adapts
// their results to the UCI-flavoured surface spec §6 names.
package engine

import (
	"errors"
	"fmt"

	"github.com/ASmolyar/chess-ai-sub001/internal/config"
	"github.com/ASmolyar/chess-ai-sub001/internal/evaluator"
	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	"github.com/ASmolyar/chess-ai-sub001/internal/movegen"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/ruleeval"
	"github.com/ASmolyar/chess-ai-sub001/internal/search"
	"github.com/ASmolyar/chess-ai-sub001/internal/transpositiontable"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("engine")
}

// ErrMalformedFen and ErrMalformedMove are the MalformedInput kind of spec
// §7's error taxonomy; ErrUnknownEvaluator reports an evaluator name that
// SetEvaluator does not know.
var (
	ErrMalformedFen     = errors.New("engine: malformed fen")
	ErrMalformedMove    = errors.New("engine: malformed uci move")
	ErrUnknownEvaluator = errors.New("engine: unknown evaluator name")
)

// Status is gameStatus()'s result, per spec §6.
type Status int

const (
	Ongoing Status = iota
	WhiteWin
	BlackWin
	Draw
)

func (s Status) String() string {
	switch s {
	case WhiteWin:
		return "white-win"
	case BlackWin:
		return "black-win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Info is getInfo()'s result, per spec §6.
type Info struct {
	Depth     int
	SelDepth  int
	Score     types.Value
	Nodes     uint64
	TimeMs    int64
	BestMove  string
}

// Engine is one isolated instance of position + search + transposition
// table + evaluator. Callers that want per-request isolation (spec §5)
// construct a fresh Engine per request; callers that want a long-lived
// game (e.g. a UCI session) keep one Engine and call NewGame between
// games.
type Engine struct {
	pos   *position.Position
	tt    *transpositiontable.Table
	srch  *search.Search
	eval  evaluator.Evaluator

	evalName   string
	lastResult search.Result
}

// New builds an Engine at the standard starting position with the
// classical-parametric evaluator installed (spec A.2's configured default).
func New() *Engine {
	tt := transpositiontable.NewTable(config.Settings.TT.SizeMB)
	ev := defaultEvaluatorFor(config.Settings.Eval.DefaultEvaluator)
	e := &Engine{
		pos:      position.NewPosition(),
		tt:       tt,
		eval:     ev,
		evalName: config.Settings.Eval.DefaultEvaluator,
	}
	e.srch = search.NewSearch(tt, ev)
	e.srch.UseNullMove = config.Settings.Search.UseNullMove
	e.srch.UseLMR = config.Settings.Search.UseLMR
	e.srch.UsePVS = config.Settings.Search.UsePVS
	return e
}

func defaultEvaluatorFor(name string) evaluator.Evaluator {
	switch name {
	case "material":
		return evaluator.NewMaterialEvaluator()
	case "turing-like":
		return evaluator.NewTuringEvaluator()
	default:
		return evaluator.NewParametricEvaluator()
	}
}

// NewGame resets search state, TT generation and the position to the
// standard starting position, per spec §6.
func (e *Engine) NewGame() {
	e.srch.NewGame()
	e.pos = position.NewPosition()
	e.lastResult = search.Result{}
}

// SetFen installs fen as the current position. On a malformed FEN the
// previous position is left untouched (spec §7: no side effect).
func (e *Engine) SetFen(fen string) error {
	p, err := position.NewPositionFromFen(fen)
	if err != nil {
		log.Warningf("engine: rejected fen %q: %v", fen, err)
		return fmt.Errorf("%w: %v", ErrMalformedFen, err)
	}
	e.pos = p
	return nil
}

// GetFen returns the current position in FEN, per spec §6.
func (e *Engine) GetFen() string {
	return e.pos.Fen()
}

// SetStartPos resets the position to the standard start, without touching
// search state or the transposition table (spec §6's "convenience").
func (e *Engine) SetStartPos() {
	e.pos = position.NewPosition()
}

// MakeMove resolves uci against the legal moves of the current position
// and applies it. It returns false - with no state change - on no match,
// per spec §6/§7 (IllegalMove is not an error, just a false return).
func (e *Engine) MakeMove(uci string) bool {
	m, ok := e.resolveUCI(uci)
	if !ok {
		return false
	}
	e.pos.DoMove(m)
	return true
}

// resolveUCI parses long-algebraic uci and matches it against the
// position's legal moves, returning the exact Move (carrying its real
// MoveType: normal/promotion/en-passant/castling) so DoMove sees the
// move the generator produced, not a hand-built guess.
func (e *Engine) resolveUCI(uci string) (types.Move, bool) {
	if len(uci) < 4 || len(uci) > 5 {
		return types.MoveNone, false
	}
	from, ok := types.SquareFromString(uci[0:2])
	if !ok || !from.IsValid() {
		return types.MoveNone, false
	}
	to, ok := types.SquareFromString(uci[2:4])
	if !ok || !to.IsValid() {
		return types.MoveNone, false
	}
	var promo types.PieceType = types.NoPieceType
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promo = types.Knight
		case 'b':
			promo = types.Bishop
		case 'r':
			promo = types.Rook
		case 'q':
			promo = types.Queen
		default:
			return types.MoveNone, false
		}
	}

	var ml types.MoveList
	movegen.GenerateLegal(e.pos, movegen.All, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == types.Promotion && m.PromotionType() != promo {
			continue
		}
		if m.MoveType() != types.Promotion && promo != types.NoPieceType {
			continue
		}
		return m, true
	}
	return types.MoveNone, false
}

// Search performs iterative deepening under the given limits and returns
// the best move as UCI, or "(none)" if the position has no legal moves,
// per spec §6.
func (e *Engine) Search(depth int, timeMs int64) string {
	var ml types.MoveList
	movegen.GenerateLegal(e.pos, movegen.All, &ml)
	if ml.Len() == 0 {
		return "(none)"
	}

	limits := search.Limits{MaxDepth: depth, MaxMillis: timeMs}
	result := e.srch.StartSearch(e.pos, limits)
	e.lastResult = result
	if result.BestMove.IsNone() {
		return ml.At(0).String()
	}
	return result.BestMove.String()
}

// Stop signals a running search to return its best-so-far, per spec §5.
func (e *Engine) Stop() {
	e.srch.StopSearch()
}

// GetInfo returns the last search's summary, per spec §6.
func (e *Engine) GetInfo() Info {
	r := e.lastResult
	return Info{
		Depth:    r.Depth,
		SelDepth: r.SelDepth,
		Score:    r.BestValue,
		Nodes:    r.Nodes,
		TimeMs:   r.Time.Milliseconds(),
		BestMove: r.BestMove.String(),
	}
}

// GameStatus classifies the current position, per spec §6. Repetition draws
// are reported under the strict game-record threefold rule (the current
// position must have occurred twice before, for three total), not
// Position.IsDraw's lenient single-earlier-repeat rule - that looser rule is
// only correct for search's internal cycle avoidance, per spec testable
// property 6.
func (e *Engine) GameStatus() Status {
	if e.pos.HalfMoveClock() >= 100 || e.pos.HasInsufficientMaterial() || e.pos.CountRepetitions() >= 2 {
		return Draw
	}
	if !movegen.HasLegalMove(e.pos) {
		if e.pos.InCheck() {
			if e.pos.SideToMove() == types.White {
				return BlackWin
			}
			return WhiteWin
		}
		return Draw
	}
	return Ongoing
}

// Evaluate returns the static evaluation from the side-to-move's
// perspective, per spec §6.
func (e *Engine) Evaluate() types.Value {
	return e.eval.Evaluate(e.pos)
}

// GetMoves lists every legal move in the current position as UCI, per
// spec §6.
func (e *Engine) GetMoves() []string {
	var ml types.MoveList
	movegen.GenerateLegal(e.pos, movegen.All, &ml)
	out := make([]string, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[i] = ml.At(i).String()
	}
	return out
}

// SetEvaluator installs one of the built-in evaluators by name
// ("material", "classical-parametric", "turing-like", "rule"), per spec
// §6. Installing "rule" without having first called ConfigureRuleEvaluator
// leaves an empty rule set installed (scores zero) rather than erroring -
// a caller is expected to follow up with a configuration.
func (e *Engine) SetEvaluator(name string) error {
	switch name {
	case "material":
		e.installEvaluator(name, evaluator.NewMaterialEvaluator())
	case "classical-parametric":
		e.installEvaluator(name, evaluator.NewParametricEvaluator())
	case "turing-like":
		e.installEvaluator(name, evaluator.NewTuringEvaluator())
	case "rule":
		ev, err := ruleeval.NewEvaluator(nil, nil)
		if err != nil {
			return err
		}
		e.installEvaluator(name, ev)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
	return nil
}

func (e *Engine) installEvaluator(name string, ev evaluator.Evaluator) {
	e.eval = ev
	e.evalName = name
	e.srch.SetEvaluator(ev)
}

// EvaluatorName reports the currently installed evaluator's public name.
func (e *Engine) EvaluatorName() string { return e.evalName }

// ParametricWeights returns the installed classical-parametric
// evaluator's current weights, or an error if it is not installed. A
// caller that wants a partial update (spec §6) decodes JSON onto this
// copy before calling ConfigureParametric, so fields absent from the
// request keep their previous value instead of zeroing out.
func (e *Engine) ParametricWeights() (evaluator.ParametricWeights, error) {
	pe, ok := e.eval.(*evaluator.ParametricEvaluator)
	if !ok {
		return evaluator.ParametricWeights{}, fmt.Errorf("engine: classical-parametric evaluator is not installed")
	}
	return pe.Weights, nil
}

// ConfigureParametric replaces the classical-parametric evaluator's
// weights in place (spec §4.5.4/§6). It does not install the parametric
// evaluator if a different one is active - callers call
// SetEvaluator("classical-parametric") first, matching how
// configureRuleEvaluator only affects the rule evaluator.
func (e *Engine) ConfigureParametric(weights evaluator.ParametricWeights) error {
	pe, ok := e.eval.(*evaluator.ParametricEvaluator)
	if !ok {
		return fmt.Errorf("engine: classical-parametric evaluator is not installed")
	}
	pe.Weights = weights
	return nil
}

// ConfigureRuleEvaluator compiles cfg and installs it atomically as the
// rule-composed evaluator, per spec §6. On a ConfigurationError the
// previously installed evaluator remains active (spec §7).
func (e *Engine) ConfigureRuleEvaluator(cfg ruleeval.Config) error {
	ev, err := cfg.Compile()
	if err != nil {
		return err
	}
	e.installEvaluator("rule", ev)
	return nil
}

// RuleEvaluator returns the installed rule evaluator for direct mutation
// (SetEnabled/SetCategoryWeight), or nil if the rule evaluator is not the
// one currently installed.
func (e *Engine) RuleEvaluator() *ruleeval.Evaluator {
	re, _ := e.eval.(*ruleeval.Evaluator)
	return re
}

// Position exposes the underlying Position read-only, for adapters (the
// HTTP and UCI layers) that need to render board state beyond FEN.
func (e *Engine) Position() *position.Position { return e.pos }
