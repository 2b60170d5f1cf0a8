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

// Package httpapi is the request adapter spec §2/§6 names but leaves out
// of scope for THE CORE: it parses JSON, dispatches to an
// internal/engine.Engine, and serializes the result back to JSON. It owns
// no board or search logic of its own - every handler is a thin translator.
//
// Each request that mutates game state (/position, /move, /search, /
// evaluator*) is served from one server-held Engine behind a mutex, giving
// a single running game across the connection the caller expects from a
// REST-ish API; /stateless-search instead builds a fresh, isolated Engine
// per call (spec §5/§6) so concurrent stateless callers never alias state.
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/ASmolyar/chess-ai-sub001/internal/engine"
	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	"github.com/ASmolyar/chess-ai-sub001/internal/ruleeval"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("httpapi")
}

// Server wraps one server-held Engine and its HTTP router.
type Server struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// NewServer builds a Server with a fresh Engine at the standard start.
func NewServer() *Server {
	return &Server{eng: engine.New()}
}

// Router builds the mux.Router this server answers on, wrapped with
// gorilla/handlers' combined access-log middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/position", s.handlePosition).Methods(http.MethodPost)
	r.HandleFunc("/move", s.handleMove).Methods(http.MethodPost)
	r.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	r.HandleFunc("/info", s.handleInfo).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/moves", s.handleMoves).Methods(http.MethodGet)
	r.HandleFunc("/evaluate", s.handleEvaluate).Methods(http.MethodGet)
	r.HandleFunc("/evaluator", s.handleEvaluator).Methods(http.MethodPost)
	r.HandleFunc("/evaluator/parametric", s.handleParametric).Methods(http.MethodPost)
	r.HandleFunc("/evaluator/rule", s.handleRuleEvaluator).Methods(http.MethodPost)
	r.HandleFunc("/stateless-search", s.handleStatelessSearch).Methods(http.MethodPost)
	return handlers.CombinedLoggingHandler(logWriter{}, r)
}

// logWriter adapts this package's structured logger to the io.Writer
// gorilla/handlers.CombinedLoggingHandler wants for its access log line.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	log.Info(string(p))
	return len(p), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("httpapi: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

type positionRequest struct {
	Fen string `json:"fen"`
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Fen == "" {
		s.eng.SetStartPos()
		writeJSON(w, http.StatusOK, map[string]string{"fen": s.eng.GetFen()})
		return
	}
	if err := s.eng.SetFen(req.Fen); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"fen": s.eng.GetFen()})
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.eng.MakeMove(req.Move)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

type searchRequest struct {
	Depth   int   `json:"depth"`
	TimeMs  int64 `json:"timeMs"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	best := s.eng.Search(req.Depth, req.TimeMs)
	writeJSON(w, http.StatusOK, map[string]string{"bestMove": best})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.eng.GetInfo())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"status": s.eng.GameStatus().String()})
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string][]string{"moves": s.eng.GetMoves()})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int32{"score": int32(s.eng.Evaluate())})
}

type evaluatorRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleEvaluator(w http.ResponseWriter, r *http.Request) {
	var req evaluatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.SetEvaluator(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"evaluator": s.eng.EvaluatorName()})
}

func (s *Server) handleParametric(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weights, err := s.eng.ParametricWeights()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&weights); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.eng.ConfigureParametric(weights); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleRuleEvaluator(w http.ResponseWriter, r *http.Request) {
	var cfg ruleeval.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.ConfigureRuleEvaluator(cfg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStatelessSearch(w http.ResponseWriter, r *http.Request) {
	var req engine.StatelessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := engine.StatelessSearch(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
