package extract

import (
	"regexp"
	"strconv"

	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/scalar"
)

// Extent strings mix several physical measurements ("x, 586p ; 21cm").
// The page count is taken as the largest number suffixed with a
// standalone "p".
var pagesPattern = regexp.MustCompile(`(?i)(\d+)\s*p\b`)

// Pages extracts the page count from the record's extent field, or nil
// when no "<n>p" measurement is present.
func Pages(raw models.RawRecord) *int {
	tokens := scalar.List(raw["extent"])
	var best *int
	for _, tok := range tokens {
		for _, m := range pagesPattern.FindAllStringSubmatch(tok, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if best == nil || n > *best {
				v := n
				best = &v
			}
		}
	}
	return best
}
