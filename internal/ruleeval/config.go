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

// Config is the wire shape of spec 6's configureRuleEvaluator payload:
// {name, description, rules, categoryWeights}. It decodes straight off
// encoding/json - every nested Condition/Target/ValueSpec is itself a
// flat, "type"-discriminated struct, so no custom UnmarshalJSON is needed
// anywhere in this tree.
type Config struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Rules           []Rule             `json:"rules"`
	CategoryWeights map[Category]float64 `json:"categoryWeights"`
}

// Compile validates and lowers a Config into an Evaluator, per spec 4.5.3.
// A rule with an unknown tag or a self-contradictory condition fails here
// (ConfigurationError, spec 7) without touching whatever evaluator is
// already installed - NewEvaluator never mutates c.
func (c *Config) Compile() (*Evaluator, error) {
	return NewEvaluator(c.Rules, c.CategoryWeights)
}
