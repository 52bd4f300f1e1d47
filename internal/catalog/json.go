package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperjump/osusume/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrMalformedDocument reports a catalog document whose root is not a
// parseable JSON object.
type ErrMalformedDocument struct {
	Path   string
	Reason string
}

func (e *ErrMalformedDocument) Error() string {
	return fmt.Sprintf("malformed catalog document %s: %s", e.Path, e.Reason)
}

// JSONSource reads records from a JSON(-LD) document whose graph key
// holds the record array.
type JSONSource struct {
	path     string
	graphKey string
}

// NewJSONSource returns a JSON source for path. graphKey selects the
// top-level collection field; empty means DefaultGraphKey.
func NewJSONSource(path, graphKey string) *JSONSource {
	if graphKey == "" {
		graphKey = DefaultGraphKey
	}
	return &JSONSource{path: path, graphKey: graphKey}
}

// Load parses the document and returns its records.
// Parsing is tolerant: a leading byte-order mark is stripped, and when
// the file is not a single valid JSON value, only the first well-formed
// value is decoded (trailing garbage or concatenated documents are
// ignored). A missing or non-array graph key yields an empty slice, not
// an error; an unparseable or non-object root yields ErrMalformedDocument.
func (s *JSONSource) Load() ([]models.RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return s.decode(data)
}

func (s *JSONSource) decode(data []byte) ([]models.RawRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		// Retry with a streaming decoder: it stops after the first
		// complete value, tolerating trailing content.
		dec := json.NewDecoder(bytes.NewReader(data))
		if decErr := dec.Decode(&root); decErr != nil {
			return nil, &ErrMalformedDocument{Path: s.path, Reason: decErr.Error()}
		}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &ErrMalformedDocument{Path: s.path, Reason: "root is not an object"}
	}

	graph, ok := obj[s.graphKey].([]any)
	if !ok {
		// Graph key absent or wrong type: no records found, not a failure.
		return nil, nil
	}

	records := make([]models.RawRecord, 0, len(graph))
	for _, entry := range graph {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, models.RawRecord(m))
		}
	}
	return records, nil
}
