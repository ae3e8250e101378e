package scoring

import (
	"strings"

	"github.com/seoforge/kwmap/internal/models"
)

// PageScorer aggregates field scores into a total weighted score for one
// page against one keyword.
type PageScorer struct {
	config *ScoringConfig
	fields *FieldScorer
}

// NewPageScorer creates a PageScorer with the given configuration.
// A nil config uses defaults; zero values are filled with defaults.
func NewPageScorer(config *ScoringConfig) *PageScorer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()
	return &PageScorer{
		config: config,
		fields: NewFieldScorer(config),
	}
}

// Score computes the total weighted score of page for keyword. Always >= 0;
// missing fields contribute nothing.
func (s *PageScorer) Score(keyword string, page *models.PageRecord) float64 {
	tokens := Tokenize(keyword)
	if len(tokens) == 0 {
		return 0
	}
	return s.ScoreTokens(tokens, strings.Join(tokens, " "), page)
}

// ScoreTokens is Score with the keyword pre-tokenized, for callers scoring
// the same keyword against many pages.
func (s *PageScorer) ScoreTokens(keywordTokens []string, keywordNorm string, page *models.PageRecord) float64 {
	if len(keywordTokens) == 0 || page == nil {
		return 0
	}
	w := s.config.Weights
	score := s.fields.Score(keywordTokens, keywordNorm, page.Title) * w.Title
	score += s.fields.Score(keywordTokens, keywordNorm, page.H1) * w.H1
	score += s.fields.Score(keywordTokens, keywordNorm, URLText(page.URL)) * w.URL
	score += s.fields.Score(keywordTokens, keywordNorm, page.MetaKeywords) * w.MetaKeywords
	score += s.fields.Score(keywordTokens, keywordNorm, page.MetaDescription) * w.MetaDescription
	score += s.fields.Score(keywordTokens, keywordNorm, page.H2) * w.H2
	return score
}

// Config returns the scoring configuration.
func (s *PageScorer) Config() *ScoringConfig {
	return s.config
}
