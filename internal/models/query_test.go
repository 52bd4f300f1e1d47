package models

import (
	"math"
	"testing"
)

func TestWeightProfileNormalized(t *testing.T) {
	facets := DefaultFacets()

	t.Run("weights sum to one", func(t *testing.T) {
		p := WeightProfile{Weights: map[Facet]float64{
			FacetSubjects:    2,
			FacetDescription: 1,
			FacetCreator:     1,
		}}
		n := p.Normalized(facets)
		var sum float64
		for _, f := range facets {
			sum += n.Weights[f]
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("weights sum to %v, want 1", sum)
		}
		if n.Weights[FacetSubjects] != 0.5 {
			t.Errorf("subjects weight = %v, want 0.5", n.Weights[FacetSubjects])
		}
		if n.Weights[FacetPublisher] != 0 {
			t.Errorf("unset facet weight = %v, want 0", n.Weights[FacetPublisher])
		}
	})

	t.Run("all-zero weights substitute the default profile", func(t *testing.T) {
		p := WeightProfile{Weights: map[Facet]float64{}, RecencyRatio: 0.3}
		n := p.Normalized(facets)
		d := DefaultWeightProfile()
		for _, f := range facets {
			if n.Weights[f] != d.Weights[f] {
				t.Errorf("weight[%s] = %v, want default %v", f, n.Weights[f], d.Weights[f])
			}
		}
		if n.RecencyRatio != 0.3 {
			t.Errorf("recency ratio = %v, want caller's 0.3", n.RecencyRatio)
		}
	})

	t.Run("negative weights ignored", func(t *testing.T) {
		p := WeightProfile{Weights: map[Facet]float64{
			FacetSubjects: -5,
			FacetCreator:  1,
		}}
		n := p.Normalized(facets)
		if n.Weights[FacetCreator] != 1 {
			t.Errorf("creator weight = %v, want 1", n.Weights[FacetCreator])
		}
		if n.Weights[FacetSubjects] != 0 {
			t.Errorf("negative weight should normalize to 0, got %v", n.Weights[FacetSubjects])
		}
	})

	t.Run("recency ratio clamped", func(t *testing.T) {
		p := WeightProfile{RecencyRatio: 2.5}
		if got := p.Normalized(facets).RecencyRatio; got != MaxRecencyRatio {
			t.Errorf("ratio = %v, want %v", got, MaxRecencyRatio)
		}
		p.RecencyRatio = -1
		if got := p.Normalized(facets).RecencyRatio; got != 0 {
			t.Errorf("ratio = %v, want 0", got)
		}
	})
}

func TestRecommendRequestValidate(t *testing.T) {
	req := RecommendRequest{}
	if err := req.Validate(10); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.TopN != 10 {
		t.Errorf("TopN = %d, want default 10", req.TopN)
	}

	req = RecommendRequest{TopN: -3}
	if err := req.Validate(10); err == nil {
		t.Error("negative TopN should fail validation")
	}
}
