package scoring

import "github.com/seoforge/kwmap/internal/models"

// Classifier maps a total match score to a discrete quality label against
// the configured ascending thresholds.
type Classifier struct {
	config *ScoringConfig
}

// NewClassifier creates a Classifier with the given config.
// A nil config uses defaults.
func NewClassifier(config *ScoringConfig) *Classifier {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()
	return &Classifier{config: config}
}

// Classify maps score to a quality label. Every non-negative score maps to
// exactly one of Excellent, Good, Fair, or Weak.
func (c *Classifier) Classify(score float64) models.Quality {
	switch {
	case score >= c.config.ExcellentThreshold:
		return models.QualityExcellent
	case score >= c.config.GoodThreshold:
		return models.QualityGood
	case score >= c.config.FairThreshold:
		return models.QualityFair
	default:
		return models.QualityWeak
	}
}

// Label classifies score, returning Unmatched when no page was matched so
// unmatched keywords stay distinguishable from weak matches.
func (c *Classifier) Label(score float64, matched bool) models.Quality {
	if !matched {
		return models.QualityUnmatched
	}
	return c.Classify(score)
}
