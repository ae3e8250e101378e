package scoring

// FieldWeights maps each page field to its relative importance. Weights are
// static for the lifetime of a run.
type FieldWeights struct {
	Title           float64 `yaml:"title"`            // default: 5.0
	H1              float64 `yaml:"h1"`               // default: 4.0
	URL             float64 `yaml:"url"`              // default: 3.0
	MetaKeywords    float64 `yaml:"meta_keywords"`    // default: 2.5
	MetaDescription float64 `yaml:"meta_description"` // default: 2.0
	H2              float64 `yaml:"h2"`               // default: 1.5
}

// ScoringConfig holds all tunables for the scoring engine: field weights,
// per-rule point values, and quality classification thresholds.
type ScoringConfig struct {
	Weights FieldWeights `yaml:"weights"`

	// Rule point values
	PhraseMatchScore float64 `yaml:"phrase_match_score"` // default: 10
	// PartialPhraseScore is awarded when the keyword appears as a raw
	// substring of the field text without token-boundary-clean edges.
	// This can fire on incidental substrings ("art" inside "start");
	// kept for compatibility with the original scoring.
	PartialPhraseScore float64 `yaml:"partial_phrase_score"` // default: 7
	CoverageScore      float64 `yaml:"coverage_score"`       // default: 5
	WordMatchScore     float64 `yaml:"word_match_score"`     // default: 2
	MinWordLength      int     `yaml:"min_word_length"`      // default: 3

	// MinMatchScore is the minimum total score for a keyword to count as
	// matched. 0 means any positive score qualifies.
	MinMatchScore float64 `yaml:"min_match_score"`

	// Quality thresholds (ascending)
	ExcellentThreshold float64 `yaml:"excellent_threshold"` // default: 100
	GoodThreshold      float64 `yaml:"good_threshold"`      // default: 60
	FairThreshold      float64 `yaml:"fair_threshold"`      // default: 30
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Weights: FieldWeights{
			Title:           5.0,
			H1:              4.0,
			URL:             3.0,
			MetaKeywords:    2.5,
			MetaDescription: 2.0,
			H2:              1.5,
		},
		PhraseMatchScore:   10,
		PartialPhraseScore: 7,
		CoverageScore:      5,
		WordMatchScore:     2,
		MinWordLength:      3,
		MinMatchScore:      0,
		ExcellentThreshold: 100,
		GoodThreshold:      60,
		FairThreshold:      30,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.Weights.Title == 0 {
		c.Weights.Title = defaults.Weights.Title
	}
	if c.Weights.H1 == 0 {
		c.Weights.H1 = defaults.Weights.H1
	}
	if c.Weights.URL == 0 {
		c.Weights.URL = defaults.Weights.URL
	}
	if c.Weights.MetaKeywords == 0 {
		c.Weights.MetaKeywords = defaults.Weights.MetaKeywords
	}
	if c.Weights.MetaDescription == 0 {
		c.Weights.MetaDescription = defaults.Weights.MetaDescription
	}
	if c.Weights.H2 == 0 {
		c.Weights.H2 = defaults.Weights.H2
	}

	if c.PhraseMatchScore == 0 {
		c.PhraseMatchScore = defaults.PhraseMatchScore
	}
	if c.PartialPhraseScore == 0 {
		c.PartialPhraseScore = defaults.PartialPhraseScore
	}
	if c.CoverageScore == 0 {
		c.CoverageScore = defaults.CoverageScore
	}
	if c.WordMatchScore == 0 {
		c.WordMatchScore = defaults.WordMatchScore
	}
	if c.MinWordLength == 0 {
		c.MinWordLength = defaults.MinWordLength
	}

	if c.ExcellentThreshold == 0 {
		c.ExcellentThreshold = defaults.ExcellentThreshold
	}
	if c.GoodThreshold == 0 {
		c.GoodThreshold = defaults.GoodThreshold
	}
	if c.FairThreshold == 0 {
		c.FairThreshold = defaults.FairThreshold
	}
}
