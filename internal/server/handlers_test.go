package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/config"
	"github.com/seoforge/kwmap/internal/matching"
	"github.com/seoforge/kwmap/internal/models"
	"github.com/seoforge/kwmap/internal/scoring"
	"github.com/seoforge/kwmap/internal/storage"
)

func newTestServer(t *testing.T, store *storage.Store) *Server {
	t.Helper()
	matcher := matching.NewMatcher(scoring.DefaultScoringConfig())
	cfg := &config.ServerConfig{Host: "localhost", Port: 0}
	return NewServer(matcher, store, cfg, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleMatch(t *testing.T) {
	s := newTestServer(t, nil)

	reqBody, err := json.Marshal(&MatchRequest{
		Keywords: []string{"shade structures", "zzz_qqq_xxx"},
		Pages: []*models.PageRecord{
			{URL: "https://acme.example.org/shade", Title: "Commercial Shade Structures"},
			{URL: "https://acme.example.org/pergolas", Title: "Pergola Kits"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/match", reqBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp MatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response ID is empty")
	}
	if resp.Total != 2 || resp.Matched != 1 {
		t.Errorf("total/matched = %d/%d, want 2/1", resp.Total, resp.Matched)
	}
	if resp.Results[0].URL != "https://acme.example.org/shade" {
		t.Errorf("matched URL = %q", resp.Results[0].URL)
	}
	if resp.Results[1].Quality != models.QualityUnmatched {
		t.Errorf("quality = %v, want Unmatched", resp.Results[1].Quality)
	}
}

func TestHandleMatch_BadBody(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodPost, "/api/v1/match", []byte("{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRuns_NoStore(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/runs", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("list status = %d, want 404", rec.Code)
	}
	rec = doRequest(t, s, http.MethodGet, "/api/v1/runs/abc", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get status = %d, want 404", rec.Code)
	}
}

func TestHandleRuns_WithStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	run := &models.MatchRun{TotalCount: 1, MatchedCount: 1}
	results := []models.MatchResult{
		{Keyword: "shade", URL: "https://acme.example.org/shade", Score: 40, Quality: models.QualityFair},
	}
	if err := store.SaveRun(context.Background(), run, results); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	s := newTestServer(t, store)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/runs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var runs []*models.MatchRun
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Errorf("runs = %+v", runs)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/v1/runs/"+run.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var loaded []models.MatchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Keyword != "shade" {
		t.Errorf("results = %+v", loaded)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/v1/runs/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown run status = %d, want 404", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}
