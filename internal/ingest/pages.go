package ingest

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/seoforge/kwmap/internal/models"
)

// Column names in Screaming Frog exports, with accepted fallbacks.
var (
	urlColumns         = []string{"Address", "address", "URL", "Url"}
	titleColumns       = []string{"Title 1", "Title"}
	h1Columns          = []string{"H1-1", "H1"}
	h2Columns          = []string{"H2-1", "H2"}
	metaDescColumns    = []string{"Meta Description 1", "Meta Description"}
	metaKeywordColumns = []string{"Meta Keywords 1", "Meta Keywords"}
)

// columnIndex maps page-record fields to their position in a header row.
// A value of -1 means the column is absent and the field stays empty.
type columnIndex struct {
	url, title, h1, h2, metaDesc, metaKeywords int
}

// mapHeader resolves a header row to column positions. The first cell has
// any BOM stripped before matching.
func mapHeader(header []string) columnIndex {
	cells := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cells[i] = strings.TrimSpace(h)
	}
	find := func(names []string) int {
		for _, name := range names {
			for i, cell := range cells {
				if cell == name {
					return i
				}
			}
		}
		return -1
	}
	return columnIndex{
		url:          find(urlColumns),
		title:        find(titleColumns),
		h1:           find(h1Columns),
		h2:           find(h2Columns),
		metaDesc:     find(metaDescColumns),
		metaKeywords: find(metaKeywordColumns),
	}
}

// cell returns row[i] trimmed, or "" when the column is absent or the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// recordFromRow builds a PageRecord from one data row. Returns nil when the
// row has no URL; callers skip and log such rows rather than aborting.
func recordFromRow(row []string, cols columnIndex) *models.PageRecord {
	url := cell(row, cols.url)
	if url == "" {
		return nil
	}
	return &models.PageRecord{
		URL:             url,
		Title:           cell(row, cols.title),
		H1:              cell(row, cols.h1),
		H2:              cell(row, cols.h2),
		MetaDescription: cell(row, cols.metaDesc),
		MetaKeywords:    cell(row, cols.metaKeywords),
	}
}

// LoadPages loads page records from path, choosing the loader by extension:
// .xlsx/.xlsm use the Excel loader, everything else the CSV loader.
func LoadPages(path string, logger *zap.Logger) ([]*models.PageRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadPagesExcel(path, logger)
	default:
		return LoadPagesCSV(path, logger)
	}
}
