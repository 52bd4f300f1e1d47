package extract

import (
	"regexp"
	"strconv"

	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/scalar"
)

// yearFields is scanned in priority order: the first field whose text
// contains a plausible 4-digit year wins, even if a lower-priority field
// holds a different year.
var yearFields = []string{
	"issued_year",
	"issued",
	"date_published",
	"publication_date",
	"date",
}

// Years like "民國77[1988]" embed the 4-digit form next to other digit
// runs; only runs starting with 19 or 20 count. Future years are not
// rejected here.
var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// Year extracts the publication year from raw, or nil when no candidate
// field contains one.
func Year(raw models.RawRecord) *int {
	for _, f := range yearFields {
		v, ok := raw[f]
		if !ok {
			continue
		}
		if m := yearPattern.FindString(scalar.Text(v)); m != "" {
			y, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			return &y
		}
	}
	return nil
}
