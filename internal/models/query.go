package models

import "fmt"

// PageRange is an inclusive page-count filter.
type PageRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether pages falls inside the range.
func (p PageRange) Contains(pages int) bool {
	return pages >= p.Min && pages <= p.Max
}

// MaxRecencyRatio caps how much of the final score the recency term may
// take; content similarity always keeps at least 20%.
const MaxRecencyRatio = 0.8

// WeightProfile holds per-facet weights plus the recency blend ratio.
// Weights are relative; Normalized renormalizes them to sum to 1.
type WeightProfile struct {
	Weights      map[Facet]float64 `json:"weights" yaml:"weights"`
	RecencyRatio float64           `json:"recency_ratio" yaml:"recency_ratio"`
}

// DefaultWeightProfile is substituted when every supplied facet weight is
// zero. Subjects dominate as the catalog's richest facet.
func DefaultWeightProfile() WeightProfile {
	return WeightProfile{
		Weights: map[Facet]float64{
			FacetSubjects:    0.4,
			FacetDescription: 0.3,
			FacetCreator:     0.15,
			FacetPublisher:   0.15,
		},
	}
}

// Normalized returns a profile whose weights over facets sum to 1 and
// whose recency ratio is clamped to [0, MaxRecencyRatio]. Facets not in
// the profile get weight 0. If the total supplied weight over facets is
// zero, the default profile is used instead (keeping the caller's
// recency ratio).
func (w WeightProfile) Normalized(facets []Facet) WeightProfile {
	ratio := w.RecencyRatio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > MaxRecencyRatio {
		ratio = MaxRecencyRatio
	}

	var total float64
	for _, f := range facets {
		if v := w.Weights[f]; v > 0 {
			total += v
		}
	}
	src := w.Weights
	if total == 0 {
		src = DefaultWeightProfile().Weights
		for _, f := range facets {
			if v := src[f]; v > 0 {
				total += v
			}
		}
	}

	out := WeightProfile{Weights: make(map[Facet]float64, len(facets)), RecencyRatio: ratio}
	for _, f := range facets {
		if total > 0 && src[f] > 0 {
			out.Weights[f] = src[f] / total
		} else {
			out.Weights[f] = 0
		}
	}
	return out
}

// RecommendRequest is a record-to-record or keyword recommendation request.
type RecommendRequest struct {
	// Record is the query record's index within the filtered set
	// (record-to-record mode).
	Record int `json:"record"`
	// Query is free text (keyword mode).
	Query string `json:"query,omitempty"`
	// Keywords are caller-selected subject terms (keyword mode); they bias
	// the related-keyword picks on each result.
	Keywords []string      `json:"keywords,omitempty"`
	Profile  WeightProfile `json:"profile"`
	TopN     int           `json:"top_n"`
}

// Validate normalizes TopN. Returns an error when TopN is not positive
// after defaulting.
func (r *RecommendRequest) Validate(defaultTopN int) error {
	if r.TopN == 0 {
		r.TopN = defaultTopN
	}
	if r.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", r.TopN)
	}
	return nil
}
