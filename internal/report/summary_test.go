package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seoforge/kwmap/internal/models"
)

func sampleResults() []models.MatchResult {
	return []models.MatchResult{
		{Keyword: "shade structures", URL: "https://acme.example.org/shade", Score: 120, Quality: models.QualityExcellent},
		{Keyword: "shade sails", URL: "https://acme.example.org/shade", Score: 45, Quality: models.QualityFair},
		{Keyword: "pergola", URL: "https://acme.example.org/pergolas", Score: 75, Quality: models.QualityGood},
		{Keyword: "zzz", Quality: models.QualityUnmatched},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults(), 10)

	if s.Total != 4 || s.Matched != 3 || s.Unmatched != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/3/1", s.Total, s.Matched, s.Unmatched)
	}
	if s.DistinctURLs != 2 {
		t.Errorf("DistinctURLs = %d, want 2", s.DistinctURLs)
	}
	if want := (120.0 + 45 + 75) / 3; s.AverageScore != want {
		t.Errorf("AverageScore = %v, want %v", s.AverageScore, want)
	}
	if s.MinScore != 45 || s.MaxScore != 120 {
		t.Errorf("score range = %v-%v, want 45-120", s.MinScore, s.MaxScore)
	}
	if got := s.MatchRate(); got != 75 {
		t.Errorf("MatchRate = %v, want 75", got)
	}

	if len(s.Top) != 3 || s.Top[0].Keyword != "shade structures" || s.Top[2].Keyword != "shade sails" {
		t.Errorf("Top = %+v", s.Top)
	}

	if len(s.SharedURLs) != 1 || s.SharedURLs[0].URL != "https://acme.example.org/shade" {
		t.Errorf("SharedURLs = %+v", s.SharedURLs)
	}
	if len(s.SharedURLs[0].Keywords) != 2 {
		t.Errorf("shared keywords = %v", s.SharedURLs[0].Keywords)
	}
}

func TestSummarize_TopNLimit(t *testing.T) {
	s := Summarize(sampleResults(), 2)
	if len(s.Top) != 2 {
		t.Fatalf("Top length = %d, want 2", len(s.Top))
	}
	if s.Top[0].Score < s.Top[1].Score {
		t.Errorf("Top not sorted descending: %v", s.Top)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 10)
	if s.Total != 0 || s.MatchRate() != 0 || s.AverageScore != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestSummary_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := Summarize(sampleResults(), 10).Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"KEYWORD MAPPING RESULTS",
		"Total Keywords:      4",
		"Matched Keywords:    3",
		"Match Rate:          75.0%",
		"Unique URLs Matched: 2",
		"TOP 3 MATCHES:",
		"shade structures",
		"URLs WITH MULTIPLE KEYWORDS (1):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestURLTail(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://acme.example.org/shade-structures/", "shade-structures"},
		{"https://acme.example.org/a/b", "b"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := urlTail(tt.url); got != tt.want {
			t.Errorf("urlTail(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
