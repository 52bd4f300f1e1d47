// Package keyword selects representative subject terms for results and
// provides the phase-one candidate lookup over a filtered corpus.
package keyword

// PickRelated chooses up to topN of the record's subjects, preferring
// subjects that also appear in picked (the query's own keywords), in
// the record's original subject order within each group. No subject is
// returned twice.
func PickRelated(subjects, picked []string, topN int) []string {
	if len(subjects) == 0 || topN <= 0 {
		return nil
	}

	pickedSet := make(map[string]bool, len(picked))
	for _, p := range picked {
		pickedSet[p] = true
	}

	chosen := make(map[string]bool, topN)
	out := make([]string, 0, topN)

	// Overlap with the query's keywords first, then fill from the rest.
	for _, s := range subjects {
		if len(out) == topN {
			return out
		}
		if pickedSet[s] && !chosen[s] {
			chosen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range subjects {
		if len(out) == topN {
			return out
		}
		if !chosen[s] {
			chosen[s] = true
			out = append(out, s)
		}
	}
	return out
}
