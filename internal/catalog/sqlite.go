package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/osusume/internal/models"
)

// SQLiteSource reads records from a SQLite database holding one JSON
// object per row in a records(id, data) table. This is the shape
// produced by common harvest tooling that snapshots a JSON-LD graph
// into a queryable file.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource returns a SQLite source for the database at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Load opens the database read-only and decodes every row's data column.
// Rows whose data is not a JSON object are skipped.
func (s *SQLiteSource) Load() ([]models.RawRecord, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", s.path))
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT data FROM records ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			continue
		}
		records = append(records, models.RawRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
