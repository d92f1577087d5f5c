// Package api serves one engine over a small JSON API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/berkgedik92/scrabble-word-finder/engine"
	"github.com/berkgedik92/scrabble-word-finder/runner"
	"github.com/berkgedik92/scrabble-word-finder/tilemapping"
)

// Server serialises every request on one mutex; the engine is not safe
// for concurrent use.
type Server struct {
	mu         sync.Mutex
	runner     *runner.GameRunner
	maxResults int
	router     *mux.Router
}

func NewServer(g *runner.GameRunner, maxResults int) *Server {
	s := &Server{runner: g, maxResults: maxResults, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router.PathPrefix("/api").Subrouter()
	r.HandleFunc("/board", s.handleGetBoard).Methods("GET")
	r.HandleFunc("/rack", s.handleSetRack).Methods("PUT")
	r.HandleFunc("/letters", s.handlePlaceLetters).Methods("POST")
	r.HandleFunc("/moves", s.handlePlaceMove).Methods("POST")
	r.HandleFunc("/candidates", s.handleCandidates).Methods("GET")
	r.HandleFunc("/reset", s.handleReset).Methods("POST")
	r.HandleFunc("/anagrams", s.handleAnagrams).Methods("GET").Queries("letters", "{letters}")
	r.Use(logRequests)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

const requestIDHeader = "X-Request-Id"

// logRequests tags each request with an id, taken from the client when it
// sends one, and logs it.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		log.Debug().Str("request-id", id).Str("method", r.Method).
			Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := s.boardResponse()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) boardResponse() BoardResponse {
	b := s.runner.Board()
	tm := s.runner.TileMapping()
	dim := b.Dim()
	resp := BoardResponse{
		Dim:       dim,
		Rows:      make([]string, dim),
		Bonuses:   make([]string, dim),
		Rack:      s.runner.Rack().String(),
		Empty:     b.IsEmpty(),
		TileCount: b.TilesPlayed(),
	}
	for r := 0; r < dim; r++ {
		var letters, bonuses strings.Builder
		for c := 0; c < dim; c++ {
			if b.HasLetter(r, c) {
				letters.WriteRune(b.GetLetter(r, c).UserVisible(tm))
			} else {
				letters.WriteRune(tilemapping.ASCIIPlayedThrough)
			}
			bonuses.WriteRune(rune(b.GetBonus(r, c)))
		}
		resp.Rows[r] = letters.String()
		resp.Bonuses[r] = bonuses.String()
	}
	return resp
}

func (s *Server) handleSetRack(w http.ResponseWriter, r *http.Request) {
	var req RackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.runner.SetCurrentRack(req.Rack); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RackResponse{Rack: s.runner.Rack().String()})
}

// handlePlaceLetters places every letter or none.
func (s *Server) handlePlaceLetters(w http.ResponseWriter, r *http.Request) {
	var req LettersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Letters) == 0 {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.runner.Board()
	mls := make([]tilemapping.MachineLetter, len(req.Letters))
	seen := map[[2]int]bool{}
	for i, p := range req.Letters {
		ml, err := s.runner.ParseLetter(p.Letter)
		if err != nil {
			writeError(w, err)
			return
		}
		pos := [2]int{p.Row, p.Col}
		if !b.PosExists(p.Row, p.Col) || b.HasLetter(p.Row, p.Col) || seen[pos] {
			writeError(w, fmt.Errorf("%w: square (%d, %d) is not free",
				engine.ErrInvalidArgument, p.Row, p.Col))
			return
		}
		seen[pos] = true
		mls[i] = ml
	}
	for i, p := range req.Letters {
		if err := s.runner.CommitLetter(mls[i], p.Row, p.Col); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, s.boardResponse())
}

func (s *Server) handlePlaceMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.runner.ParseMove(req.Coords, req.Word)
	if err != nil {
		writeError(w, err)
		return
	}
	score, err := s.runner.CommitMove(m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{
		Move:  m.ShortDescription(s.runner.TileMapping()),
		Score: score,
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	limit := s.maxResults
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			jsonError(w, "limit must be a non-negative number", http.StatusBadRequest)
			return
		}
		limit = n
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tm := s.runner.TileMapping()
	sugs := s.runner.TopSuggestions(limit)
	writeJSON(w, http.StatusOK, CandidatesResponse{
		Rack: s.runner.Rack().String(),
		Candidates: lo.Map(sugs, func(sug engine.Suggestion, _ int) Candidate {
			return Candidate{
				Move:     sug.Move.ShortDescription(tm),
				Row:      sug.Move.RowStart(),
				Col:      sug.Move.ColStart(),
				Vertical: sug.Move.Vertical(),
				Word:     sug.Move.Word().UserVisible(tm),
				Score:    sug.Score,
			}
		}),
	})
}

func (s *Server) handleAnagrams(w http.ResponseWriter, r *http.Request) {
	letters := mux.Vars(r)["letters"]
	s.mu.Lock()
	defer s.mu.Unlock()
	words, err := s.runner.Anagram(letters, r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AnagramsResponse{Letters: letters, Words: words})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runner.NewGame()
	writeJSON(w, http.StatusOK, s.boardResponse())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("encoding-response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrInvalidArgument) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Err(err).Msg("request-failed")
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
