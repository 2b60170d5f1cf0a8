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

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHandler() (*Handler, *bytes.Buffer) {
	out := &bytes.Buffer{}
	h := NewHandler(strings.NewReader(""), out)
	return h, out
}

func TestUciHandshake(t *testing.T) {
	h, out := newHandler()
	quit := h.Command("uci")
	assert.False(t, quit)
	assert.Contains(t, out.String(), "id name chess-ai-sub001")
	assert.Contains(t, out.String(), "uciok")
}

func TestIsReady(t *testing.T) {
	h, out := newHandler()
	h.Command("isready")
	assert.Contains(t, out.String(), "readyok")
}

func TestQuitStopsTheLoop(t *testing.T) {
	h, _ := newHandler()
	assert.True(t, h.Command("quit"))
}

func TestPositionStartposThenGoReturnsBestmove(t *testing.T) {
	h, out := newHandler()
	h.Command("position startpos")
	h.Command("go depth 3")
	assert.Contains(t, out.String(), "bestmove ")
}

func TestPositionFenWithMoves(t *testing.T) {
	h, out := newHandler()
	h.Command("position fen " + StartPosFen + " moves e2e4 e7e5")
	h.Command("go depth 2")
	assert.Contains(t, out.String(), "bestmove ")
}

func TestBlankLineIsIgnored(t *testing.T) {
	h, _ := newHandler()
	assert.False(t, h.Command(""))
	assert.False(t, h.Command("   "))
}
