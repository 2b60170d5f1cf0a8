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
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// formula.go implements the tiny arithmetic DSL of spec 4.5.1's
// formula(expr) value: + - * / ^, parentheses, the variable n, unary
// functions {sqrt abs log ln floor ceil round exp sin cos tan} and binary
// {min max pow}. There is no expression-evaluator library anywhere in the
// retrieval pack to prefer over a hand-rolled recursive-descent parser for
// a grammar this small (see DESIGN.md).

// formulaExpr is a compiled formula: parseFormula runs once at configure
// time (ValueSpec.Validate), eval runs once per measurement during Evaluate.
type formulaExpr struct {
	root node
}

func (f *formulaExpr) eval(n float64) float64 { return f.root.eval(n) }

type node interface {
	eval(n float64) float64
}

type numberNode float64

func (v numberNode) eval(float64) float64 { return float64(v) }

type varNode struct{}

func (varNode) eval(n float64) float64 { return n }

type unaryNode struct {
	op   byte
	expr node
}

func (u unaryNode) eval(n float64) float64 {
	v := u.expr.eval(n)
	if u.op == '-' {
		return -v
	}
	return v
}

type binOpNode struct {
	op          byte
	left, right node
}

func (b binOpNode) eval(n float64) float64 {
	l, r := b.left.eval(n), b.right.eval(n)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	default:
		return 0
	}
}

type unaryFuncNode struct {
	name string
	arg  node
}

func (u unaryFuncNode) eval(n float64) float64 {
	x := u.arg.eval(n)
	switch u.name {
	case "sqrt":
		return math.Sqrt(x)
	case "abs":
		return math.Abs(x)
	case "log":
		return math.Log10(x)
	case "ln":
		return math.Log(x)
	case "floor":
		return math.Floor(x)
	case "ceil":
		return math.Ceil(x)
	case "round":
		return math.Round(x)
	case "exp":
		return math.Exp(x)
	case "sin":
		return math.Sin(x)
	case "cos":
		return math.Cos(x)
	case "tan":
		return math.Tan(x)
	default:
		return x
	}
}

type binaryFuncNode struct {
	name        string
	left, right node
}

func (b binaryFuncNode) eval(n float64) float64 {
	l, r := b.left.eval(n), b.right.eval(n)
	switch b.name {
	case "min":
		return math.Min(l, r)
	case "max":
		return math.Max(l, r)
	case "pow":
		return math.Pow(l, r)
	default:
		return l
	}
}

var unaryFuncs = map[string]bool{
	"sqrt": true, "abs": true, "log": true, "ln": true, "floor": true,
	"ceil": true, "round": true, "exp": true, "sin": true, "cos": true, "tan": true,
}

var binaryFuncs = map[string]bool{"min": true, "max": true, "pow": true}

// formulaParser is a small recursive-descent parser over a hand-rolled
// token stream; precedence climbs expr -> term -> unary -> power -> primary.
type formulaParser struct {
	src string
	pos int
}

func parseFormula(src string) (*formulaExpr, error) {
	p := &formulaParser{src: src}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected trailing input at %d in %q", p.pos, src)
	}
	return &formulaExpr{root: n}, nil
}

func (p *formulaParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *formulaParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *formulaParser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *formulaParser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		c := p.peek()
		if c != '+' && c != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binOpNode{op: c, left: left, right: right}
	}
}

func (p *formulaParser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		c := p.peek()
		if c != '*' && c != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binOpNode{op: c, left: left, right: right}
	}
}

func (p *formulaParser) parseUnary() (node, error) {
	if p.peek() == '-' {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: '-', expr: inner}, nil
	}
	if p.peek() == '+' {
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *formulaParser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() == '^' {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binOpNode{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *formulaParser) parsePrimary() (node, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.consume(')') {
			return nil, fmt.Errorf("missing closing paren at %d in %q", p.pos, p.src)
		}
		return n, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdentOrCall()
	default:
		return nil, fmt.Errorf("unexpected character %q at %d in %q", c, p.pos, p.src)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *formulaParser) parseNumber() (node, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", p.src[start:p.pos], err)
	}
	return numberNode(v), nil
}

func (p *formulaParser) parseIdentOrCall() (node, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentCont(p.src[p.pos]) {
		p.pos++
	}
	name := strings.ToLower(p.src[start:p.pos])

	if p.peek() != '(' {
		if name == "n" {
			return varNode{}, nil
		}
		return nil, fmt.Errorf("unknown identifier %q in %q", name, p.src)
	}

	p.pos++ // consume '('
	var args []node
	if p.peek() != ')' {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.consume(',') {
				continue
			}
			break
		}
	}
	if !p.consume(')') {
		return nil, fmt.Errorf("missing closing paren for %s(...) in %q", name, p.src)
	}

	switch {
	case unaryFuncs[name] && len(args) == 1:
		return unaryFuncNode{name: name, arg: args[0]}, nil
	case binaryFuncs[name] && len(args) == 2:
		return binaryFuncNode{name: name, left: args[0], right: args[1]}, nil
	default:
		return nil, fmt.Errorf("function %q called with %d argument(s) in %q", name, len(args), p.src)
	}
}
