// Package catalog loads raw bibliographic records from a source document
// (JSON-LD file, SQLite database, or XLSX export) and filters them into
// the working subset used for ranking.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperjump/osusume/internal/models"
)

// DefaultGraphKey is the conventional top-level collection field in
// JSON-LD catalog exports.
const DefaultGraphKey = "@graph"

// Source loads raw records from one catalog document.
type Source interface {
	// Load reads the whole catalog. An empty slice with a nil error means
	// the document was readable but held no records.
	Load() ([]models.RawRecord, error)
}

// Open returns a Source for path, chosen by file extension:
// .json/.jsonld (and unknown extensions) use the tolerant JSON source,
// .db/.sqlite/.sqlite3 the SQLite source, .xlsx the Excel source.
// graphKey applies to the JSON source only; empty means DefaultGraphKey.
func Open(path, graphKey string) (Source, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(path), nil
	case ".xlsx":
		return NewExcelSource(path), nil
	default:
		return NewJSONSource(path, graphKey), nil
	}
}
