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

package engine

import (
	"github.com/ASmolyar/chess-ai-sub001/internal/ruleeval"
)

// StatelessRequest is the stateless search entry point's input, per spec
// §6: {fen, depth, evalConfig?}.
type StatelessRequest struct {
	Fen        string         `json:"fen"`
	Depth      int            `json:"depth"`
	EvalConfig *ruleeval.Config `json:"evalConfig,omitempty"`
}

// StatelessResponse is the stateless search entry point's output, per spec
// §6: {bestMove}.
type StatelessResponse struct {
	BestMove string `json:"bestMove"`
}

// StatelessSearch spins up a brand-new, isolated Engine for one call,
// applies the optional rule-evaluator configuration, searches and
// returns. The Engine it builds is discarded when the call returns - no
// state is retained between calls, per spec §6's "the engine must not
// retain state between such calls" and §5's per-request isolation.
func StatelessSearch(req StatelessRequest) (StatelessResponse, error) {
	e := New()
	if err := e.SetFen(req.Fen); err != nil {
		return StatelessResponse{}, err
	}
	if req.EvalConfig != nil {
		if err := e.ConfigureRuleEvaluator(*req.EvalConfig); err != nil {
			return StatelessResponse{}, err
		}
	}
	best := e.Search(req.Depth, 0)
	return StatelessResponse{BestMove: best}, nil
}
