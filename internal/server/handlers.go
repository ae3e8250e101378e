package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/models"
)

// MatchRequest is the body of POST /api/v1/match.
type MatchRequest struct {
	Keywords []string             `json:"keywords"`
	Pages    []*models.PageRecord `json:"pages"`
}

// MatchResponse is the response of POST /api/v1/match.
type MatchResponse struct {
	ID        string               `json:"id"`
	Results   []models.MatchResult `json:"results"`
	Total     int                  `json:"total"`
	Matched   int                  `json:"matched"`
	QueryTime int64                `json:"query_time_ms"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("match request",
		zap.Int("keywords", len(req.Keywords)),
		zap.Int("pages", len(req.Pages)),
	)

	start := time.Now()
	results := s.matcher.MatchAll(req.Keywords, req.Pages)

	matched := 0
	for i := range results {
		if results[i].Matched() {
			matched++
		}
	}

	s.respondJSON(w, http.StatusOK, &MatchResponse{
		ID:        uuid.NewString(),
		Results:   results,
		Total:     len(results),
		Matched:   matched,
		QueryTime: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotFound, "run history is not configured")
		return
	}
	runs, err := s.store.ListRuns(r.Context(), 50)
	if err != nil {
		s.logger.Error("list runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*models.MatchRun{}
	}
	s.respondJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotFound, "run history is not configured")
		return
	}
	id := chi.URLParam(r, "id")
	results, err := s.store.GetRunResults(r.Context(), id)
	if err != nil {
		s.logger.Error("get run failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(results) == 0 {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
