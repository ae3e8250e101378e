// Package models defines core data structures for page records, match results, and runs.
package models

// PageRecord represents one crawled page from a site export.
// Missing fields are empty strings; they contribute zero score, never an error.
type PageRecord struct {
	URL             string `json:"url" db:"url"`
	Title           string `json:"title" db:"title"`
	H1              string `json:"h1" db:"h1"`
	H2              string `json:"h2" db:"h2"`
	MetaDescription string `json:"meta_description" db:"meta_description"`
	MetaKeywords    string `json:"meta_keywords" db:"meta_keywords"`
}
