package models

import "time"

// Quality is the discrete bucket a match score falls into.
type Quality string

const (
	// QualityExcellent is the top bucket.
	QualityExcellent Quality = "Excellent"
	// QualityGood is the second bucket.
	QualityGood Quality = "Good"
	// QualityFair is the third bucket.
	QualityFair Quality = "Fair"
	// QualityWeak covers any positive score below the Fair threshold.
	QualityWeak Quality = "Weak"
	// QualityUnmatched marks keywords that matched no page at all.
	// Kept distinct from Weak so reports can tell "barely matched" from "not matched".
	QualityUnmatched Quality = "Unmatched"
)

// MatchResult is the outcome of matching one keyword against the page collection.
// URL is empty when no page scored above zero.
type MatchResult struct {
	Keyword         string  `json:"keyword" db:"keyword"`
	URL             string  `json:"matched_url" db:"matched_url"`
	Score           float64 `json:"match_score" db:"match_score"`
	Title           string  `json:"page_title" db:"page_title"`
	H1              string  `json:"h1_heading" db:"h1_heading"`
	MetaDescription string  `json:"meta_description" db:"meta_description"`
	Quality         Quality `json:"match_quality" db:"match_quality"`
}

// Matched reports whether the keyword was assigned a URL.
func (m *MatchResult) Matched() bool {
	return m.URL != ""
}

// MatchRun is a recorded mapping run for history listings.
type MatchRun struct {
	ID           string    `json:"id" db:"id"`
	KeywordsPath string    `json:"keywords_path" db:"keywords_path"`
	PagesPath    string    `json:"pages_path" db:"pages_path"`
	TotalCount   int       `json:"total_count" db:"total_count"`
	MatchedCount int       `json:"matched_count" db:"matched_count"`
	AverageScore float64   `json:"average_score" db:"average_score"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// MatchRate returns the fraction of keywords matched, in [0, 1].
func (r *MatchRun) MatchRate() float64 {
	if r.TotalCount == 0 {
		return 0
	}
	return float64(r.MatchedCount) / float64(r.TotalCount)
}
