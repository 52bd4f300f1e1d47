package catalog

import (
	"errors"
	"testing"
)

func decodeJSON(t *testing.T, data string) ([]any, error) {
	t.Helper()
	src := NewJSONSource("test.json", "")
	records, err := src.decode([]byte(data))
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out, err
}

func TestJSONSourceDecode(t *testing.T) {
	t.Run("plain graph", func(t *testing.T) {
		records, err := decodeJSON(t, `{"@graph":[{"title":"a"},{"title":"b"}]}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("got %d records, want 2", len(records))
		}
	})

	t.Run("BOM stripped", func(t *testing.T) {
		records, err := decodeJSON(t, "\xEF\xBB\xBF"+`{"@graph":[{"title":"a"}]}`)
		if err != nil {
			t.Fatalf("decode with BOM: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("got %d records, want 1", len(records))
		}
	})

	t.Run("trailing garbage after first value", func(t *testing.T) {
		records, err := decodeJSON(t, `{"@graph":[{"title":"a"}]}{"second":"doc"}`)
		if err != nil {
			t.Fatalf("decode with trailing document: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("got %d records, want 1", len(records))
		}
	})

	t.Run("missing graph key is no records, not an error", func(t *testing.T) {
		records, err := decodeJSON(t, `{"name":"catalog"}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("got %d records, want 0", len(records))
		}
	})

	t.Run("graph key of wrong type is no records", func(t *testing.T) {
		records, err := decodeJSON(t, `{"@graph":"not an array"}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("got %d records, want 0", len(records))
		}
	})

	t.Run("empty graph is empty, not an error", func(t *testing.T) {
		records, err := decodeJSON(t, `{"@graph":[]}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("got %d records, want 0", len(records))
		}
	})

	t.Run("non-object root is malformed", func(t *testing.T) {
		_, err := decodeJSON(t, `[1,2,3]`)
		var malformed *ErrMalformedDocument
		if !errors.As(err, &malformed) {
			t.Errorf("want ErrMalformedDocument, got %v", err)
		}
	})

	t.Run("unparseable input is malformed", func(t *testing.T) {
		_, err := decodeJSON(t, `{{{not json`)
		var malformed *ErrMalformedDocument
		if !errors.As(err, &malformed) {
			t.Errorf("want ErrMalformedDocument, got %v", err)
		}
	})

	t.Run("non-object graph entries are skipped", func(t *testing.T) {
		records, err := decodeJSON(t, `{"@graph":[{"title":"a"},"stray",42]}`)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("got %d records, want 1", len(records))
		}
	})

	t.Run("custom graph key", func(t *testing.T) {
		src := NewJSONSource("test.json", "items")
		records, err := src.decode([]byte(`{"items":[{"title":"a"}]}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("got %d records, want 1", len(records))
		}
	})
}

func TestOpenPicksSourceByExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "catalog.json", want: "*catalog.JSONSource"},
		{path: "catalog.jsonld", want: "*catalog.JSONSource"},
		{path: "catalog.db", want: "*catalog.SQLiteSource"},
		{path: "catalog.sqlite3", want: "*catalog.SQLiteSource"},
		{path: "catalog.xlsx", want: "*catalog.ExcelSource"},
	}
	for _, tt := range tests {
		src, err := Open(tt.path, "")
		if err != nil {
			t.Fatalf("Open(%q): %v", tt.path, err)
		}
		var got string
		switch src.(type) {
		case *JSONSource:
			got = "*catalog.JSONSource"
		case *SQLiteSource:
			got = "*catalog.SQLiteSource"
		case *ExcelSource:
			got = "*catalog.ExcelSource"
		}
		if got != tt.want {
			t.Errorf("Open(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, err := Open("", ""); err == nil {
		t.Error("Open with empty path should fail")
	}
}
