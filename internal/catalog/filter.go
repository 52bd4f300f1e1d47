package catalog

import "github.com/hyperjump/osusume/internal/models"

// FilteredSet is the ordered working subset of normalized records used
// to build one set of facet indices. Positions within Records are the
// stable identifiers used by every downstream vector space, so a
// FilteredSet must not be mutated after construction.
type FilteredSet struct {
	// Records holds the surviving records in input order.
	Records []models.Record
	// Source maps each position back to its index in the pre-filter
	// record slice.
	Source []int
}

// Empty reports whether no record passed the filter. Callers treat this
// as a "no results" condition, not a failure.
func (f *FilteredSet) Empty() bool {
	return len(f.Records) == 0
}

// Filter keeps records whose page count falls inside pageRange, plus
// records with no page count when includeMissing is set. Input order is
// preserved.
func Filter(records []models.Record, pageRange models.PageRange, includeMissing bool) *FilteredSet {
	out := &FilteredSet{}
	for i, rec := range records {
		keep := false
		if rec.Pages == nil {
			keep = includeMissing
		} else {
			keep = pageRange.Contains(*rec.Pages)
		}
		if keep {
			out.Records = append(out.Records, rec)
			out.Source = append(out.Source, i)
		}
	}
	return out
}
