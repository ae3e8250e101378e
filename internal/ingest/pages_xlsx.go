package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/models"
)

// LoadPagesExcel loads page records from an Excel export. The first sheet is
// used; its first row is the header and maps the same columns as the CSV
// loader. Rows without a URL are skipped with a warning.
func LoadPagesExcel(path string, logger *zap.Logger) ([]*models.PageRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pages file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("pages file %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := mapHeader(rows[0])
	if cols.url < 0 {
		return nil, fmt.Errorf("pages file %s has no Address/URL column", path)
	}

	var pages []*models.PageRecord
	skipped := 0
	for i, row := range rows[1:] {
		record := recordFromRow(row, cols)
		if record == nil {
			skipped++
			if logger != nil {
				logger.Warn("skipping row without URL", zap.String("path", path), zap.Int("line", i+2))
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
