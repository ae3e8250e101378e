package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/models"
)

const sniffSize = 1024

// LoadPagesCSV loads page records from a Screaming Frog style CSV export.
// The delimiter is sniffed from a leading sample (tab wins over comma when it
// occurs more often). Rows without a URL are skipped with a warning; a
// missing file is an error carrying the path.
func LoadPagesCSV(path string, logger *zap.Logger) ([]*models.PageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pages file %s: %w", path, err)
	}
	defer f.Close()

	delimiter, err := sniffDelimiter(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages file %s: %w", path, err)
	}

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	cols := mapHeader(header)
	if cols.url < 0 {
		return nil, fmt.Errorf("pages file %s has no Address/URL column", path)
	}

	var pages []*models.PageRecord
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s line %d: %w", path, line, err)
		}
		record := recordFromRow(row, cols)
		if record == nil {
			skipped++
			if logger != nil {
				logger.Warn("skipping row without URL", zap.String("path", path), zap.Int("line", line))
			}
			continue
		}
		pages = append(pages, record)
	}

	if logger != nil {
		logger.Info("pages loaded",
			zap.String("path", path),
			zap.Int("count", len(pages)),
			zap.Int("skipped", skipped),
		)
	}
	return pages, nil
}

// sniffDelimiter peeks at the start of f and picks tab when it outnumbers
// commas, else comma. The reader is rewound afterwards.
func sniffDelimiter(f *os.File) (rune, error) {
	sample := make([]byte, sniffSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	s := string(sample[:n])
	if strings.Count(s, "\t") > strings.Count(s, ",") {
		return '\t', nil
	}
	return ',', nil
}
