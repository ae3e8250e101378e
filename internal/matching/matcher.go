// Package matching assigns each keyword to its best-scoring page record.
package matching

import (
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/models"
	"github.com/seoforge/kwmap/internal/scoring"
)

// Matcher scores every keyword against every page and selects the maximum.
// It performs no I/O and never fails: empty inputs yield empty or unmatched
// results.
type Matcher struct {
	scorer     *scoring.PageScorer
	classifier *scoring.Classifier
	minScore   float64
	workers    int
	logger     *zap.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithWorkers sets the number of concurrent keyword workers.
func WithWorkers(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithLogger sets a logger for per-keyword debug output.
func WithLogger(l *zap.Logger) MatcherOption {
	return func(m *Matcher) { m.logger = l }
}

// NewMatcher creates a Matcher with the given scoring configuration.
// A nil config uses defaults.
func NewMatcher(config *scoring.ScoringConfig, opts ...MatcherOption) *Matcher {
	if config == nil {
		config = scoring.DefaultScoringConfig()
	}
	m := &Matcher{
		scorer:     scoring.NewPageScorer(config),
		classifier: scoring.NewClassifier(config),
		minScore:   config.MinMatchScore,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchAll returns one MatchResult per keyword, in input order. Keywords run
// in parallel across a bounded worker pool; results are written to
// index-addressed slots so output order never depends on scheduling. For each
// keyword, pages are scanned in collection order and only a strictly greater
// score replaces the current best, so the first page at the maximum always
// wins regardless of how many pages tie.
func (m *Matcher) MatchAll(keywords []string, pages []*models.PageRecord) []models.MatchResult {
	results := make([]models.MatchResult, len(keywords))
	if len(keywords) == 0 {
		return results
	}

	workers := m.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(keywords) {
		workers = len(keywords)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = m.matchOne(keywords[i], pages)
			}
		}()
	}
	for i := range keywords {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// matchOne finds the best page for a single keyword.
func (m *Matcher) matchOne(keyword string, pages []*models.PageRecord) models.MatchResult {
	tokens := scoring.Tokenize(keyword)
	norm := strings.Join(tokens, " ")

	bestScore := 0.0
	var best *models.PageRecord
	for _, page := range pages {
		score := m.scorer.ScoreTokens(tokens, norm, page)
		if score > bestScore {
			bestScore = score
			best = page
		}
	}

	if best == nil || bestScore <= 0 || bestScore < m.minScore {
		if m.logger != nil {
			m.logger.Debug("no match", zap.String("keyword", keyword), zap.Float64("best_score", bestScore))
		}
		return models.MatchResult{
			Keyword: keyword,
			Quality: m.classifier.Label(0, false),
		}
	}

	if m.logger != nil {
		m.logger.Debug("matched",
			zap.String("keyword", keyword),
			zap.String("url", best.URL),
			zap.Float64("score", bestScore),
		)
	}
	return models.MatchResult{
		Keyword:         keyword,
		URL:             best.URL,
		Score:           bestScore,
		Title:           best.Title,
		H1:              best.H1,
		MetaDescription: best.MetaDescription,
		Quality:         m.classifier.Label(bestScore, true),
	}
}
