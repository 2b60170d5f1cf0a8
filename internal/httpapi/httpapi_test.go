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

package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		r = httptest.NewRequest(method, path, bytes.NewReader(buf))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandlePositionSetsStartPosWhenFenOmitted(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodPost, "/position", map[string]string{})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["fen"], "rnbqkbnr")
}

func TestHandlePositionRejectsMalformedFen(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodPost, "/position", map[string]string{"fen": "garbage"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMoveAppliesLegalMove(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodPost, "/move", map[string]string{"move": "e2e4"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["ok"])
}

func TestHandleSearchReturnsBestMove(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodPost, "/search", map[string]interface{}{"depth": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["bestMove"])
}

func TestHandleStatusAndMovesAtStart(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ongoing", status["status"])

	w = doJSON(t, s.Router(), http.MethodGet, "/moves", nil)
	var moves map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moves))
	assert.Len(t, moves["moves"], 20)
}

func TestHandleParametricIsAPartialMerge(t *testing.T) {
	s := NewServer()
	w := doJSON(t, s.Router(), http.MethodPost, "/evaluator", map[string]string{"name": "classical-parametric"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s.Router(), http.MethodPost, "/evaluator/parametric", map[string]float64{"mobilityWeight": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	weights, err := s.eng.ParametricWeights()
	require.NoError(t, err)
	assert.Equal(t, 7.0, weights.MobilityWeight)
}

func TestHandleRuleEvaluatorInstallsRule(t *testing.T) {
	s := NewServer()
	cfg := map[string]interface{}{
		"name": "material-only",
		"rules": []map[string]interface{}{{
			"id":       "pawn-count",
			"category": "material",
			"weight":   1,
			"enabled":  true,
			"condition": map[string]string{"type": "always"},
			"target":    map[string]interface{}{"type": "piece-count", "piece_type": 1},
			"value":     map[string]interface{}{"type": "fixed", "v": 100},
		}},
	}
	w := doJSON(t, s.Router(), http.MethodPost, "/evaluator/rule", cfg)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rule", s.eng.EvaluatorName())
}

func TestHandleStatelessSearchDoesNotTouchServerPosition(t *testing.T) {
	s := NewServer()
	before := s.eng.GetFen()

	req := map[string]interface{}{
		"fen":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"depth": 3,
	}
	w := doJSON(t, s.Router(), http.MethodPost, "/stateless-search", req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, before, s.eng.GetFen())
}
