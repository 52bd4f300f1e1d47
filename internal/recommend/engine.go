// Package recommend orchestrates the recommendation pipeline: normalize
// the catalog, filter it into a working set, fit per-facet TF-IDF
// indices, and answer record-to-record and keyword queries against them.
package recommend

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/osusume/internal/catalog"
	"github.com/hyperjump/osusume/internal/extract"
	"github.com/hyperjump/osusume/internal/keyword"
	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/ranking"
)

const defaultRelatedKeywords = 3

// Snapshot is one filtered corpus with its fitted facet indices and
// candidate lookup. Immutable after construction; record indices in
// query requests and results refer to Set.Records positions.
type Snapshot struct {
	ID     string
	Set    *catalog.FilteredSet
	Index  *FacetIndex
	Lookup *keyword.Lookup

	fingerprint string
}

// Engine holds the normalized catalog and a registry of snapshots.
// Queries are read-only against a snapshot, so they may run concurrently;
// the mutex guards the catalog swap and the snapshot registry.
type Engine struct {
	logger      *zap.Logger
	refYear     int
	defaultTopN int
	relatedN    int

	mu            sync.RWMutex
	records       []models.Record
	snapshots     map[string]*Snapshot
	byFingerprint map[string]*Snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithReferenceYear fixes the reference year for recency scoring.
// Without it, the current calendar year at query time is used.
func WithReferenceYear(year int) Option {
	return func(e *Engine) { e.refYear = year }
}

// WithDefaultTopN sets the result count used when a request leaves
// top_n unset.
func WithDefaultTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultTopN = n
		}
	}
}

// WithRelatedKeywords sets how many related subject terms are attached
// to each result.
func WithRelatedKeywords(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.relatedN = n
		}
	}
}

// NewEngine creates an engine with an empty catalog.
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger:        logger,
		defaultTopN:   10,
		relatedN:      defaultRelatedKeywords,
		snapshots:     make(map[string]*Snapshot),
		byFingerprint: make(map[string]*Snapshot),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadCatalog reads the source and replaces the engine's catalog with
// its normalized records. All existing snapshots are invalidated: their
// record indices are only meaningful against the corpus they were built
// from.
func (e *Engine) LoadCatalog(src catalog.Source) (int, error) {
	raws, err := src.Load()
	if err != nil {
		return 0, err
	}
	records := extract.NormalizeAll(raws)

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, snap := range e.snapshots {
		if snap.Lookup != nil {
			_ = snap.Lookup.Close()
		}
	}
	e.records = records
	e.snapshots = make(map[string]*Snapshot)
	e.byFingerprint = make(map[string]*Snapshot)
	e.logger.Info("catalog loaded", zap.Int("records", len(records)))
	return len(records), nil
}

// Records returns the full normalized catalog (pre-filter).
func (e *Engine) Records() []models.Record {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.records
}

// Snapshot filters the catalog and fits facet indices, reusing an
// existing snapshot when the same record identities and facets were
// already built. An empty filter result yields a snapshot with no index
// (queries against it return no candidates, which is not an error).
func (e *Engine) Snapshot(pageRange models.PageRange, includeMissing bool, facets []models.Facet) (*Snapshot, error) {
	if len(facets) == 0 {
		facets = models.DefaultFacets()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	set := catalog.Filter(e.records, pageRange, includeMissing)
	fp := Fingerprint(set, facets)
	if snap, ok := e.byFingerprint[fp]; ok {
		return snap, nil
	}

	snap := &Snapshot{
		ID:          uuid.NewString(),
		Set:         set,
		fingerprint: fp,
	}
	if !set.Empty() {
		idx, err := BuildIndex(set, facets)
		if err != nil {
			return nil, err
		}
		for _, ec := range idx.EmptyFacets() {
			e.logger.Warn("facet dropped from ranking", zap.String("facet", string(ec.Facet)))
		}
		lookup, err := keyword.NewLookup(set.Records)
		if err != nil {
			return nil, fmt.Errorf("build candidate lookup: %w", err)
		}
		snap.Index = idx
		snap.Lookup = lookup
	}

	e.snapshots[snap.ID] = snap
	e.byFingerprint[fp] = snap
	e.logger.Debug("snapshot built",
		zap.String("id", snap.ID),
		zap.Int("records", len(set.Records)))
	return snap, nil
}

// Get returns the snapshot by id, or ErrUnknownSnapshot.
func (e *Engine) Get(id string) (*Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	snap, ok := e.snapshots[id]
	if !ok {
		return nil, ErrUnknownSnapshot
	}
	return snap, nil
}

// Search runs the phase-one candidate lookup against a snapshot.
func (e *Engine) Search(snapshotID, query string, limit int) ([]models.Candidate, error) {
	snap, err := e.Get(snapshotID)
	if err != nil {
		return nil, err
	}
	if snap.Lookup == nil {
		return nil, nil
	}
	return snap.Lookup.Search(query, limit)
}

// RecommendByRecord ranks the snapshot's records by similarity to one of
// its own records. The query record never appears in the output.
func (e *Engine) RecommendByRecord(snapshotID string, req models.RecommendRequest) ([]models.ScoredResult, error) {
	snap, err := e.Get(snapshotID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(e.defaultTopN); err != nil {
		return nil, err
	}
	if snap.Set.Empty() {
		return nil, nil
	}
	if req.Record < 0 || req.Record >= len(snap.Set.Records) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrUnknownQueryRecord, req.Record, len(snap.Set.Records))
	}

	results := ranking.Rank(ranking.Input{
		Facets:       snap.Index.Facets(),
		Similarities: snap.Index.RecordSimilarities(req.Record),
		Recency:      e.recencyVector(snap),
		Profile:      req.Profile,
		Exclude:      req.Record,
		TopN:         req.TopN,
	})

	// In record mode the query's own subjects bias the related picks.
	picked := snap.Set.Records[req.Record].Subjects
	e.attachRelated(snap, results, picked)
	return results, nil
}

// RecommendByKeywords ranks the snapshot's records against free text
// plus caller-selected keywords.
func (e *Engine) RecommendByKeywords(snapshotID string, req models.RecommendRequest) ([]models.ScoredResult, error) {
	snap, err := e.Get(snapshotID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(e.defaultTopN); err != nil {
		return nil, err
	}
	if snap.Set.Empty() {
		return nil, nil
	}

	query := req.Query
	for _, k := range req.Keywords {
		query += " " + k
	}

	results := ranking.Rank(ranking.Input{
		Facets:       snap.Index.Facets(),
		Similarities: snap.Index.QuerySimilarities(query),
		Recency:      e.recencyVector(snap),
		Profile:      req.Profile,
		Exclude:      ranking.NoExclusion,
		TopN:         req.TopN,
	})

	e.attachRelated(snap, results, req.Keywords)
	return results, nil
}

func (e *Engine) attachRelated(snap *Snapshot, results []models.ScoredResult, picked []string) {
	for i := range results {
		rec := snap.Set.Records[results[i].Record]
		results[i].RelatedKeywords = keyword.PickRelated(rec.Subjects, picked, e.relatedN)
	}
}

func (e *Engine) recencyVector(snap *Snapshot) []float64 {
	ref := e.refYear
	if ref == 0 {
		ref = time.Now().Year()
	}
	out := make([]float64, len(snap.Set.Records))
	for i := range snap.Set.Records {
		out[i] = ranking.RecencyWeight(snap.Set.Records[i].Year, ref)
	}
	return out
}
