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

// Package uci is a thin UCI protocol front door over internal/engine,
// an alternate driver to internal/httpapi for the same Engine façade
// (spec C's supplemented feature: the original program shipped a full UCI
// loop; the distilled spec only requires a single search(depth,
// timeMs) -> uci entry point, so this package keeps just enough of the
// protocol - position/go/isready/setoption/ucinewgame/stop/quit - to drive
// the engine from a standard chess GUI).
package uci

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/ASmolyar/chess-ai-sub001/internal/engine"
	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	"github.com/ASmolyar/chess-ai-sub001/internal/position"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("uci")
}

// Handler reads UCI commands from In and writes UCI responses to Out,
// driving one Engine for the lifetime of the session.
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	eng *engine.Engine
}

// NewHandler builds a Handler over r/w, with a fresh Engine.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	return &Handler{
		In:  bufio.NewScanner(r),
		Out: bufio.NewWriter(w),
		eng: engine.New(),
	}
}

// Loop reads commands until "quit" or EOF.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.Command(h.In.Text()) {
			return
		}
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// Command handles one line of UCI protocol. It returns true iff the line
// was "quit".
func (h *Handler) Command(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.send("id name chess-ai-sub001")
		h.send("id author chess-ai-sub001 contributors")
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.eng.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.eng.Stop()
	case "setoption":
		// Accepted and ignored beyond logging: this engine's tunables are
		// exposed through internal/config and internal/engine, not a UCI
		// option table, per spec §6's configure* calls.
		log.Debugf("setoption: %s", line)
	default:
		log.Warningf("unknown uci command: %s", line)
	}
	return false
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	i := 1
	switch tokens[1] {
	case "startpos":
		h.eng.SetStartPos()
		i = 2
	case "fen":
		fenTokens := tokens[2:]
		movesAt := len(fenTokens)
		for j, t := range fenTokens {
			if t == "moves" {
				movesAt = j
				break
			}
		}
		fen := strings.Join(fenTokens[:movesAt], " ")
		if err := h.eng.SetFen(fen); err != nil {
			log.Warningf("position fen: %v", err)
			return
		}
		i = 2 + movesAt
	default:
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		for _, mv := range tokens[i+1:] {
			if !h.eng.MakeMove(mv) {
				log.Warningf("position: illegal move in moves list: %s", mv)
				return
			}
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	depth := 0
	timeMs := int64(0)
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				if d, err := strconv.Atoi(tokens[i+1]); err == nil {
					depth = d
				}
			}
		case "movetime":
			if i+1 < len(tokens) {
				if t, err := strconv.ParseInt(tokens[i+1], 10, 64); err == nil {
					timeMs = t
				}
			}
		}
	}
	best := h.eng.Search(depth, timeMs)
	h.send(fmt.Sprintf("bestmove %s", best))
}

func (h *Handler) send(s string) {
	_, _ = h.Out.WriteString(s)
	_, _ = h.Out.WriteString("\n")
	_ = h.Out.Flush()
	log.Debugf(">> %s", s)
}

// StartPosFen re-exports the standard starting FEN for callers that want
// it without importing internal/position directly.
const StartPosFen = position.StartFen
