package ranking

import (
	"reflect"
	"testing"

	"github.com/hyperjump/osusume/internal/models"
)

func fourRecordInput() Input {
	return Input{
		Facets: models.DefaultFacets(),
		Similarities: map[models.Facet][]float64{
			models.FacetSubjects:    {1.0, 0.8, 0.2, 0.5},
			models.FacetDescription: {1.0, 0.1, 0.9, 0.5},
			models.FacetCreator:     {1.0, 0.0, 0.0, 0.5},
			models.FacetPublisher:   {1.0, 0.0, 0.0, 0.5},
		},
		Recency: []float64{0, 0, 0, 0},
		Exclude: NoExclusion,
	}
}

func order(results []models.ScoredResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Record
	}
	return out
}

func TestRankSelfExclusion(t *testing.T) {
	in := fourRecordInput()
	in.Exclude = 0
	results := Rank(in)
	for _, r := range results {
		if r.Record == 0 {
			t.Fatalf("query record 0 appeared in results: %+v", results)
		}
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results after self-exclusion, got %d", len(results))
	}
}

func TestRankAllZeroWeightsMatchesDefaultProfile(t *testing.T) {
	in := fourRecordInput()
	in.Profile = models.WeightProfile{Weights: map[models.Facet]float64{}}
	zero := Rank(in)

	in.Profile = models.DefaultWeightProfile()
	def := Rank(in)

	if !reflect.DeepEqual(zero, def) {
		t.Errorf("all-zero profile ranking differs from default profile:\n%v\n%v", zero, def)
	}
}

func TestRankTieBreakKeepsCorpusOrder(t *testing.T) {
	in := Input{
		Facets: []models.Facet{models.FacetSubjects},
		Similarities: map[models.Facet][]float64{
			models.FacetSubjects: {0.5, 0.5, 0.9, 0.5},
		},
		Recency: []float64{0, 0, 0, 0},
		Exclude: NoExclusion,
	}
	results := Rank(in)
	want := []int{2, 0, 1, 3}
	if got := order(results); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRankRecencyBlend(t *testing.T) {
	in := Input{
		Facets: []models.Facet{models.FacetSubjects},
		Similarities: map[models.Facet][]float64{
			// Record 0 wins on content, record 1 on recency.
			models.FacetSubjects: {0.9, 0.1},
		},
		Recency: []float64{0.0, 1.0},
		Exclude: NoExclusion,
	}

	in.Profile = models.WeightProfile{Weights: map[models.Facet]float64{models.FacetSubjects: 1}}
	contentOnly := Rank(in)
	if contentOnly[0].Record != 0 {
		t.Fatalf("with no recency blend, record 0 should lead: %+v", contentOnly)
	}

	in.Profile.RecencyRatio = 0.8
	blended := Rank(in)
	if blended[0].Record != 1 {
		t.Errorf("with recency ratio 0.8, record 1 should lead: %+v", blended)
	}
	// Content scores are unchanged by the blend.
	if blended[0].ContentScore != 0.1 || blended[1].ContentScore != 0.9 {
		t.Errorf("content scores changed by blending: %+v", blended)
	}
}

func TestRankTopNTruncation(t *testing.T) {
	in := fourRecordInput()
	in.TopN = 2
	results := Rank(in)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Rank != 1 || results[1].Rank != 2 {
		t.Errorf("ranks not sequential: %+v", results)
	}

	// Asking for more than available returns all available.
	in.TopN = 100
	if got := len(Rank(in)); got != 4 {
		t.Errorf("expected all 4 results, got %d", got)
	}
}

func TestRankMissingFacetContributesZero(t *testing.T) {
	in := Input{
		Facets: []models.Facet{models.FacetSubjects, models.FacetDescription},
		Similarities: map[models.Facet][]float64{
			// Description facet missing entirely (empty corpus).
			models.FacetSubjects: {0.4, 0.6},
		},
		Recency: []float64{0, 0},
		Profile: models.WeightProfile{Weights: map[models.Facet]float64{
			models.FacetSubjects:    1,
			models.FacetDescription: 1,
		}},
		Exclude: NoExclusion,
	}
	results := Rank(in)
	// Subjects weight is 0.5 after normalization; description adds nothing.
	if results[0].Record != 1 || results[0].ContentScore != 0.3 {
		t.Errorf("unexpected top result: %+v", results[0])
	}
}
