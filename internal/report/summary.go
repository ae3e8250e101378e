package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/seoforge/kwmap/internal/models"
	"github.com/seoforge/kwmap/pkg/utils"
)

// Summary holds aggregate statistics over one mapping run.
type Summary struct {
	Total        int
	Matched      int
	Unmatched    int
	DistinctURLs int
	AverageScore float64
	MinScore     float64
	MaxScore     float64
	// Top holds the highest-scoring matches, best first.
	Top []models.MatchResult
	// SharedURLs lists URLs that attracted more than one keyword, most
	// crowded first.
	SharedURLs []SharedURL
}

// SharedURL is a URL matched by multiple keywords.
type SharedURL struct {
	URL      string
	Keywords []string
}

// MatchRate returns the matched fraction as a percentage.
func (s *Summary) MatchRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Total) * 100
}

// Summarize computes aggregate statistics over results, keeping at most topN
// top matches.
func Summarize(results []models.MatchResult, topN int) *Summary {
	s := &Summary{Total: len(results)}
	byURL := make(map[string][]string)

	var matched []models.MatchResult
	sum := 0.0
	for _, r := range results {
		if !r.Matched() {
			s.Unmatched++
			continue
		}
		s.Matched++
		sum += r.Score
		if s.Matched == 1 || r.Score < s.MinScore {
			s.MinScore = r.Score
		}
		if r.Score > s.MaxScore {
			s.MaxScore = r.Score
		}
		matched = append(matched, r)
		byURL[r.URL] = append(byURL[r.URL], r.Keyword)
	}
	s.DistinctURLs = len(byURL)
	if s.Matched > 0 {
		s.AverageScore = sum / float64(s.Matched)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	if topN > 0 && len(matched) > topN {
		matched = matched[:topN]
	}
	s.Top = matched

	for url, keywords := range byURL {
		if len(keywords) > 1 {
			s.SharedURLs = append(s.SharedURLs, SharedURL{URL: url, Keywords: keywords})
		}
	}
	sort.SliceStable(s.SharedURLs, func(i, j int) bool {
		if len(s.SharedURLs[i].Keywords) != len(s.SharedURLs[j].Keywords) {
			return len(s.SharedURLs[i].Keywords) > len(s.SharedURLs[j].Keywords)
		}
		return s.SharedURLs[i].URL < s.SharedURLs[j].URL
	})

	return s
}

// Write renders the summary as a human-readable report.
func (s *Summary) Write(w io.Writer) error {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "KEYWORD MAPPING RESULTS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Keywords:      %d\n", s.Total)
	fmt.Fprintf(w, "Matched Keywords:    %d\n", s.Matched)
	fmt.Fprintf(w, "Unmatched Keywords:  %d\n", s.Unmatched)
	fmt.Fprintf(w, "Match Rate:          %.1f%%\n", s.MatchRate())
	fmt.Fprintf(w, "Unique URLs Matched: %d\n", s.DistinctURLs)
	fmt.Fprintf(w, "Average Match Score: %.2f\n", s.AverageScore)
	if s.Matched > 0 {
		fmt.Fprintf(w, "Score Range:         %.2f - %.2f\n", s.MinScore, s.MaxScore)
	}

	if len(s.Top) > 0 {
		fmt.Fprintf(w, "\nTOP %d MATCHES:\n", len(s.Top))
		table := tablewriter.NewWriter(w)
		table.Header("#", "Keyword", "URL", "Score", "Quality")
		for i, r := range s.Top {
			if err := table.Append(
				fmt.Sprintf("%d", i+1),
				utils.Truncate(r.Keyword, 40),
				utils.Truncate(urlTail(r.URL), 50),
				fmt.Sprintf("%.1f", r.Score),
				string(r.Quality),
			); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(s.SharedURLs) > 0 {
		fmt.Fprintf(w, "\nURLs WITH MULTIPLE KEYWORDS (%d):\n", len(s.SharedURLs))
		shown := s.SharedURLs
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, shared := range shown {
			fmt.Fprintf(w, "  %s: %d keywords\n", urlTail(shared.URL), len(shared.Keywords))
			for i, keyword := range shared.Keywords {
				if i == 3 {
					fmt.Fprintf(w, "    ... and %d more\n", len(shared.Keywords)-3)
					break
				}
				fmt.Fprintf(w, "    - %s\n", keyword)
			}
		}
	}

	fmt.Fprintln(w, rule)
	return nil
}

// urlTail returns the last non-empty path segment of url, or the whole url
// when it has no path.
func urlTail(url string) string {
	if url == "" {
		return "unknown"
	}
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	tail := parts[len(parts)-1]
	if tail == "" {
		return url
	}
	return tail
}
