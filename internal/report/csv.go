// Package report serializes match results to CSV and renders the run summary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/seoforge/kwmap/internal/models"
	"github.com/seoforge/kwmap/pkg/utils"
)

// NoMatchMarker is written in the matched_url column for unmatched keywords.
const NoMatchMarker = "NO_MATCH"

// Column width limits for the descriptive page fields.
const (
	maxTitleLen    = 150
	maxH1Len       = 100
	maxMetaDescLen = 200
)

var resultColumns = []string{
	"keyword", "matched_url", "match_score", "page_title",
	"h1_heading", "meta_description", "match_quality",
}

// WriteCSV writes one row per result to path, in result order. Unmatched
// results get the NO_MATCH marker, a 0.00 score, and empty page fields.
func WriteCSV(path string, results []models.MatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(resultColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range results {
		if err := w.Write(resultRow(&results[i])); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", results[i].Keyword, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file %s: %w", path, err)
	}
	return nil
}

func resultRow(r *models.MatchResult) []string {
	if !r.Matched() {
		return []string{r.Keyword, NoMatchMarker, "0.00", "", "", "", string(r.Quality)}
	}
	return []string{
		r.Keyword,
		r.URL,
		fmt.Sprintf("%.2f", r.Score),
		utils.Clip(r.Title, maxTitleLen),
		utils.Clip(r.H1, maxH1Len),
		utils.Clip(r.MetaDescription, maxMetaDescLen),
		string(r.Quality),
	}
}
