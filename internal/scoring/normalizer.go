// Package scoring implements the keyword-to-page relevance scoring engine:
// text normalization, per-field match scoring, weighted aggregation across
// page fields, and quality classification of total scores.
package scoring

import (
	"net/url"
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it on non-alphanumeric boundaries.
// Empty tokens are dropped; order and multiplicity are preserved.
// Total over all inputs: empty or punctuation-only text yields no tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Normalize returns the tokenized form of text joined by single spaces.
// It is a fixed point: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(Tokenize(text), " ")
}

// URLText extracts the scoreable text from a URL: the host with the "www."
// prefix and ".com" suffix stripped, plus the path with separators treated
// as word boundaries, all normalized. Unparseable URLs degrade to the
// normalized raw string rather than an error.
func URLText(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Normalize(rawURL)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	host = strings.TrimSuffix(host, ".com")
	return Normalize(host + " " + u.Path)
}
