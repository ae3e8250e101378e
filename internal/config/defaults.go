package config

import "github.com/seoforge/kwmap/internal/scoring"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Inputs.KeywordsPath == "" {
		cfg.Inputs.KeywordsPath = "keywords.txt"
	}
	if cfg.Inputs.PagesPath == "" {
		cfg.Inputs.PagesPath = "internal_all.csv"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "keyword_mappings.csv"
	}
	if cfg.Output.TopN == 0 {
		cfg.Output.TopN = 10
	}
	if cfg.Scoring == nil {
		cfg.Scoring = scoring.DefaultScoringConfig()
	} else {
		cfg.Scoring.ApplyDefaults()
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = 400
	}
	// Matching.Workers 0 means "let the matcher pick" (NumCPU).
	// Storage.DatabasePath empty means history is disabled.
}
