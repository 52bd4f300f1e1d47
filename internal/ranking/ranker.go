// Package ranking blends per-facet similarities and recency weights into
// a single ranked result list.
package ranking

import (
	"sort"

	"github.com/hyperjump/osusume/internal/models"
)

// NoExclusion is passed as the exclude index for keyword-mode queries,
// where no corpus record is the query itself.
const NoExclusion = -1

// Input carries everything needed to rank one query against a corpus.
type Input struct {
	// Facets lists the facets being scored, in configuration order.
	Facets []models.Facet
	// Similarities holds one similarity row per facet, each with one
	// entry per corpus record. A facet missing from the map (e.g. its
	// corpus was empty) contributes zero similarity everywhere.
	Similarities map[models.Facet][]float64
	// Recency holds the per-record recency weight.
	Recency []float64
	// Profile is the caller's weight profile; it is renormalized here.
	Profile models.WeightProfile
	// Exclude is the corpus index of the query record, or NoExclusion.
	Exclude int
	// TopN truncates the result list. Fewer candidates than TopN is not
	// an error; all available are returned.
	TopN int
}

// Rank computes content and final scores for every corpus record, sorts
// by final score descending (ties keep corpus order), drops the query
// record itself, and truncates to TopN.
func Rank(in Input) []models.ScoredResult {
	n := len(in.Recency)
	profile := in.Profile.Normalized(in.Facets)

	content := make([]float64, n)
	for _, f := range in.Facets {
		w := profile.Weights[f]
		sims, ok := in.Similarities[f]
		if w == 0 || !ok {
			continue
		}
		for i := 0; i < n && i < len(sims); i++ {
			content[i] += w * sims[i]
		}
	}

	ratio := profile.RecencyRatio
	results := make([]models.ScoredResult, 0, n)
	for i := 0; i < n; i++ {
		if i == in.Exclude {
			continue
		}
		results = append(results, models.ScoredResult{
			Record:       i,
			ContentScore: content[i],
			FinalScore:   (1-ratio)*content[i] + ratio*in.Recency[i],
		})
	}

	// Stable sort keeps corpus order for equal scores, so output is
	// deterministic.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].FinalScore > results[b].FinalScore
	})

	if in.TopN > 0 && len(results) > in.TopN {
		results = results[:in.TopN]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
