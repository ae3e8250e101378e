// Package ingest loads keyword lists and page-record exports from disk.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadKeywords reads a line-delimited keyword file: one keyword per line,
// blank lines skipped, carriage returns and a leading BOM stripped.
// A missing file is an error carrying the offending path.
func LoadKeywords(path string, logger *zap.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file %s: %w", path, err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}

	if logger != nil {
		logger.Info("keywords loaded", zap.String("path", path), zap.Int("count", len(keywords)))
	}
	return keywords, nil
}
