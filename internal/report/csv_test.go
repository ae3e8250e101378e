package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/seoforge/kwmap/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteCSV(t *testing.T) {
	results := []models.MatchResult{
		{
			Keyword:         "shade structures",
			URL:             "https://acme.example.org/shade",
			Score:           87.5,
			Title:           "Commercial Shade",
			H1:              "Shade",
			MetaDescription: "Custom shade structures.",
			Quality:         models.QualityGood,
		},
		{
			Keyword: "zzz",
			Quality: models.QualityUnmatched,
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	wantHeader := []string{"keyword", "matched_url", "match_score", "page_title", "h1_heading", "meta_description", "match_quality"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	matched := rows[1]
	if matched[1] != "https://acme.example.org/shade" || matched[2] != "87.50" || matched[6] != "Good" {
		t.Errorf("matched row = %v", matched)
	}

	unmatched := rows[2]
	if unmatched[1] != NoMatchMarker || unmatched[2] != "0.00" || unmatched[6] != "Unmatched" {
		t.Errorf("unmatched row = %v", unmatched)
	}
	if unmatched[3] != "" || unmatched[4] != "" || unmatched[5] != "" {
		t.Errorf("unmatched row page fields not empty: %v", unmatched)
	}
}

func TestWriteCSV_TruncatesLongFields(t *testing.T) {
	results := []models.MatchResult{
		{
			Keyword:         "k",
			URL:             "https://acme.example.org/a",
			Score:           1,
			Title:           strings.Repeat("t", 500),
			H1:              strings.Repeat("h", 500),
			MetaDescription: strings.Repeat("m", 500),
			Quality:         models.QualityWeak,
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	row := readCSV(t, path)[1]
	if len(row[3]) != 150 {
		t.Errorf("page_title length = %d, want 150", len(row[3]))
	}
	if len(row[4]) != 100 {
		t.Errorf("h1_heading length = %d, want 100", len(row[4]))
	}
	if len(row[5]) != 200 {
		t.Errorf("meta_description length = %d, want 200", len(row[5]))
	}
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
