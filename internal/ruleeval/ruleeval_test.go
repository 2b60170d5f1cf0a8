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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASmolyar/chess-ai-sub001/internal/position"
	"github.com/ASmolyar/chess-ai-sub001/internal/types"
)

func materialOnlyRules() []Rule {
	values := map[types.PieceType]float64{
		types.Pawn:   100,
		types.Knight: 320,
		types.Bishop: 330,
		types.Rook:   500,
		types.Queen:  900,
	}
	rules := make([]Rule, 0, len(values))
	for pt, v := range values {
		rules = append(rules, Rule{
			ID:        pt.String() + "-count",
			Name:      pt.String() + " count",
			Category:  "material",
			Weight:    1,
			Enabled:   true,
			Condition: Condition{Kind: ConditionAlways},
			Target:    Target{Kind: TargetPieceCount, PieceType: pt},
			Value:     ValueSpec{Kind: ValueFixed, V: v},
		})
	}
	return rules
}

// TestMaterialOnlyRuleConfigMatchesStartAndImbalance exercises spec 4.5:
// a material-only rule config scores 0 on the symmetric start and the raw
// piece-value difference on an imbalanced position.
func TestMaterialOnlyRuleConfigMatchesStartAndImbalance(t *testing.T) {
	ev, err := NewEvaluator(materialOnlyRules(), nil)
	require.NoError(t, err)

	start := position.NewPosition()
	assert.Equal(t, types.Value(0), ev.Evaluate(start))

	extraRook, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	assert.Equal(t, types.Value(1000), ev.Evaluate(extraRook))
}

func TestRuleEvaluatorDisabledRuleContributesNothing(t *testing.T) {
	ev, err := NewEvaluator(materialOnlyRules(), nil)
	require.NoError(t, err)

	extraRook, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	before := ev.Evaluate(extraRook)
	ok := ev.SetEnabled(types.Rook.String()+"-count", false)
	require.True(t, ok)
	after := ev.Evaluate(extraRook)

	assert.NotEqual(t, before, after)
	assert.Equal(t, before-types.Value(1000), after)
}

// TestCategoryWeightLinearity checks spec TESTABLE PROPERTIES #10: scaling
// a category's weight scales that category's contribution linearly.
func TestCategoryWeightLinearity(t *testing.T) {
	extraRook, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	ev1, err := NewEvaluator(materialOnlyRules(), map[Category]float64{"material": 1.0})
	require.NoError(t, err)
	ev2, err := NewEvaluator(materialOnlyRules(), map[Category]float64{"material": 2.0})
	require.NoError(t, err)

	assert.Equal(t, ev1.Evaluate(extraRook)*2, ev2.Evaluate(extraRook))
}

// TestRuleEvaluatorSymmetry checks spec TESTABLE PROPERTIES #9: a position
// and its color-swapped mirror (side to move swapped too) get the same
// side-to-move score.
func TestRuleEvaluatorSymmetry(t *testing.T) {
	ev, err := NewEvaluator(materialOnlyRules(), nil)
	require.NoError(t, err)

	white, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	black, err := position.NewPositionFromFen("r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, ev.Evaluate(white), ev.Evaluate(black))
}

func TestInvalidRuleConfigRejected(t *testing.T) {
	_, err := NewEvaluator([]Rule{{ID: "", Condition: Condition{Kind: ConditionAlways}, Target: Target{Kind: TargetGlobal}, Value: ValueSpec{Kind: ValueFixed}}}, nil)
	assert.Error(t, err)
}

func TestConfigCompileProducesWorkingEvaluator(t *testing.T) {
	cfg := Config{
		Name:            "material-only",
		Description:     "counts material",
		Rules:           materialOnlyRules(),
		CategoryWeights: map[Category]float64{"material": 1.0},
	}
	ev, err := cfg.Compile()
	require.NoError(t, err)
	assert.Equal(t, types.Value(0), ev.Evaluate(position.NewPosition()))
}
