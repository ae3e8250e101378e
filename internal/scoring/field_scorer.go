package scoring

import "strings"

// FieldScorer computes the raw relevance score between a keyword and one
// field's text. Three rule families contribute additively: phrase matches,
// multi-word coverage, and individual significant-word matches.
type FieldScorer struct {
	config *ScoringConfig
}

// NewFieldScorer creates a FieldScorer with the given config.
func NewFieldScorer(config *ScoringConfig) *FieldScorer {
	return &FieldScorer{config: config}
}

// Score returns the raw (unweighted) score of the keyword against fieldText.
// keywordTokens is the tokenized keyword and keywordNorm its normalized
// (space-joined) form; fieldText may be raw, it is normalized internally.
// A field with no token overlap scores exactly 0.
func (s *FieldScorer) Score(keywordTokens []string, keywordNorm, fieldText string) float64 {
	if len(keywordTokens) == 0 || fieldText == "" {
		return 0
	}
	fieldTokens := Tokenize(fieldText)
	if len(fieldTokens) == 0 {
		return 0
	}
	fieldNorm := strings.Join(fieldTokens, " ")

	score := s.scorePhrase(keywordTokens, keywordNorm, fieldTokens, fieldNorm)
	score += s.scoreCoverage(keywordTokens, fieldNorm)
	score += s.scoreWords(keywordTokens, fieldNorm)
	return score
}

// scorePhrase awards the full phrase bonus when the keyword token sequence
// appears contiguously in the field token sequence, or the partial bonus when
// the keyword is only a raw substring of the field text (not token-aligned).
func (s *FieldScorer) scorePhrase(keywordTokens []string, keywordNorm string, fieldTokens []string, fieldNorm string) float64 {
	if containsTokenSequence(fieldTokens, keywordTokens) {
		return s.config.PhraseMatchScore
	}
	if keywordNorm != "" && strings.Contains(fieldNorm, keywordNorm) {
		return s.config.PartialPhraseScore
	}
	return 0
}

// scoreCoverage awards (matched distinct tokens / distinct tokens) * CoverageScore
// for multi-word keywords. Token presence uses substring containment, matching
// the phrase rules: "structure" counts as present in "structures".
func (s *FieldScorer) scoreCoverage(keywordTokens []string, fieldNorm string) float64 {
	if len(keywordTokens) < 2 {
		return 0
	}
	seen := make(map[string]bool, len(keywordTokens))
	matched := 0
	for _, tok := range keywordTokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if strings.Contains(fieldNorm, tok) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return float64(matched) / float64(len(seen)) * s.config.CoverageScore
}

// scoreWords awards WordMatchScore once per distinct keyword token of length
// >= MinWordLength that appears in the field, regardless of how many times
// the field repeats it.
func (s *FieldScorer) scoreWords(keywordTokens []string, fieldNorm string) float64 {
	seen := make(map[string]bool, len(keywordTokens))
	score := 0.0
	for _, tok := range keywordTokens {
		if len(tok) < s.config.MinWordLength || seen[tok] {
			continue
		}
		seen[tok] = true
		if strings.Contains(fieldNorm, tok) {
			score += s.config.WordMatchScore
		}
	}
	return score
}

// containsTokenSequence reports whether needle appears as a contiguous
// subsequence of haystack with exact token equality at both ends.
func containsTokenSequence(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, tok := range needle {
			if haystack[i+j] != tok {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
