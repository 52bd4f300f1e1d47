package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/osusume/internal/models"
)

// ExcelSource reads records from the first sheet of an XLSX catalog
// export. The header row supplies field names; each following row
// becomes one record with string values. Empty cells are omitted so
// they scalarize like absent fields.
type ExcelSource struct {
	path string
}

// NewExcelSource returns an Excel source for the workbook at path.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// Load opens the workbook and converts its first sheet's rows to records.
func (s *ExcelSource) Load() ([]models.RawRecord, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	records := make([]models.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(models.RawRecord, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || i >= len(row) {
				continue
			}
			if cell := strings.TrimSpace(row[i]); cell != "" {
				rec[name] = cell
			}
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records, nil
}
