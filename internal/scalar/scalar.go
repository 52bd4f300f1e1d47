// Package scalar flattens arbitrarily nested catalog values into plain
// strings. Record fields in the source documents are free-form JSON: the
// same field may hold a string in one record, a list of objects in the
// next, and be absent in a third. All field access goes through Text and
// List so that shape handling lives in one place.
package scalar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Text converts v to a single flat string.
// nil yields "". Lists and maps are flattened recursively, joined by a
// single space (map keys are ignored). Numbers and booleans use their
// literal form. Never fails; unknown types fall back to fmt formatting.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; print integers without a trailing ".0".
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := Text(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		parts := make([]string, 0, len(t))
		for _, e := range orderedValues(t) {
			if s := Text(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// List converts v to a flat list of trimmed, non-empty strings.
// Lists flatten one level, scalarizing each element; maps yield their
// values; a plain string yields a singleton. nil yields an empty list.
func List(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s := strings.TrimSpace(Text(e)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case map[string]any:
		out := make([]string, 0, len(t))
		for _, e := range orderedValues(t) {
			if s := strings.TrimSpace(Text(e)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	default:
		if s := strings.TrimSpace(Text(v)); s != "" {
			return []string{s}
		}
		return nil
	}
}

// orderedValues returns map values in sorted-key order so that Text and
// List are deterministic regardless of Go's map iteration order.
func orderedValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Insertion order is not recoverable from a decoded JSON map, so key
	// order stands in as the stable ordering.
	sort.Strings(keys)
	out := make([]any, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
