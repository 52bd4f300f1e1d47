package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/hyperjump/osusume/internal/catalog"
	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/tfidf"
)

// FacetIndex holds one fitted TF-IDF space per facet over a filtered
// set. Built once per filtered set, read-only afterward, and safe to
// share across concurrent queries.
type FacetIndex struct {
	facets []models.Facet
	spaces map[models.Facet]*tfidf.Model
	// empty records which facets failed to fit because every document in
	// their corpus was empty.
	empty map[models.Facet]*EmptyCorpusError
}

// BuildIndex fits one vector space per facet over set. A facet whose
// corpus is entirely empty is recorded (see EmptyFacets) and contributes
// zero similarity; only when every facet is empty does BuildIndex fail
// with ErrNoRankableContent.
func BuildIndex(set *catalog.FilteredSet, facets []models.Facet) (*FacetIndex, error) {
	if len(facets) == 0 {
		facets = models.DefaultFacets()
	}
	idx := &FacetIndex{
		facets: facets,
		spaces: make(map[models.Facet]*tfidf.Model, len(facets)),
		empty:  make(map[models.Facet]*EmptyCorpusError),
	}

	for _, f := range facets {
		docs := make([]string, len(set.Records))
		for i := range set.Records {
			docs[i] = set.Records[i].FacetText(f)
		}
		model, err := tfidf.Fit(docs)
		if errors.Is(err, tfidf.ErrEmptyCorpus) {
			idx.empty[f] = &EmptyCorpusError{Facet: f}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fit facet %q: %w", f, err)
		}
		idx.spaces[f] = model
	}

	if len(idx.spaces) == 0 {
		return nil, ErrNoRankableContent
	}
	return idx, nil
}

// Facets returns the configured facet list in order.
func (x *FacetIndex) Facets() []models.Facet {
	return x.facets
}

// EmptyFacets returns the per-facet empty-corpus conditions encountered
// during the fit, so callers can report which facets were dropped.
func (x *FacetIndex) EmptyFacets() []*EmptyCorpusError {
	out := make([]*EmptyCorpusError, 0, len(x.empty))
	for _, f := range x.facets {
		if e, ok := x.empty[f]; ok {
			out = append(out, e)
		}
	}
	return out
}

// RecordSimilarities returns, per facet, the similarity of corpus record
// q to every corpus record. Facets with an empty corpus are absent from
// the map.
func (x *FacetIndex) RecordSimilarities(q int) map[models.Facet][]float64 {
	out := make(map[models.Facet][]float64, len(x.spaces))
	for f, model := range x.spaces {
		rows := model.Rows()
		out[f] = tfidf.SimilarityToAll(rows[q], rows)
	}
	return out
}

// QuerySimilarities projects query into every facet's space and returns
// the per-facet similarity rows.
func (x *FacetIndex) QuerySimilarities(query string) map[models.Facet][]float64 {
	out := make(map[models.Facet][]float64, len(x.spaces))
	for f, model := range x.spaces {
		out[f] = tfidf.SimilarityToAll(model.Transform(query), model.Rows())
	}
	return out
}

// Fingerprint identifies a filtered set + facet choice for index
// memoization: same record identities and facets, same fingerprint.
func Fingerprint(set *catalog.FilteredSet, facets []models.Facet) string {
	h := sha256.New()
	for _, src := range set.Source {
		h.Write([]byte(strconv.Itoa(src)))
		h.Write([]byte{','})
	}
	h.Write([]byte{'|'})
	for _, f := range facets {
		h.Write([]byte(f))
		h.Write([]byte{','})
	}
	return hex.EncodeToString(h.Sum(nil))
}
