// Package extract derives typed facets from raw catalog records: a
// normalized record per raw record, a publication year, and a page count.
// Extraction never fails; malformed or missing fields degrade to empty
// strings or absent values.
package extract

import (
	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/scalar"
)

// Field names probed on raw records. Catalogs in the wild disagree on
// casing and hyphenation, so each facet scans a small candidate list.
var (
	titleFields       = []string{"title", "label", "name"}
	subjectFields     = []string{"subject", "subjects", "keyword", "keywords"}
	descriptionFields = []string{"description", "abstract", "summary"}
	creatorFields     = []string{"creator", "author", "contributor"}
	publisherFields   = []string{"publisher"}
)

// Normalize builds the normalized view of one raw record.
// Pure: the same raw record always yields the same result.
func Normalize(raw models.RawRecord) models.Record {
	rec := models.Record{
		Title:       firstText(raw, titleFields),
		Subjects:    firstList(raw, subjectFields),
		Description: firstText(raw, descriptionFields),
		Creator:     firstText(raw, creatorFields),
		Publisher:   firstText(raw, publisherFields),
		Year:        Year(raw),
		Pages:       Pages(raw),
		Raw:         raw,
	}
	if rec.Title == "" {
		rec.Title = models.UntitledPlaceholder
	}
	return rec
}

// NormalizeAll normalizes every raw record, preserving order.
func NormalizeAll(raws []models.RawRecord) []models.Record {
	out := make([]models.Record, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

func firstText(raw models.RawRecord, fields []string) string {
	for _, f := range fields {
		if v, ok := raw[f]; ok {
			if s := scalar.Text(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstList(raw models.RawRecord, fields []string) []string {
	for _, f := range fields {
		if v, ok := raw[f]; ok {
			if l := scalar.List(v); len(l) > 0 {
				return l
			}
		}
	}
	return nil
}
