package keyword

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/hyperjump/osusume/internal/models"
)

// lookupDoc is the shape indexed per record for candidate search.
type lookupDoc struct {
	Title    string `json:"title"`
	Creator  string `json:"creator"`
	Subjects string `json:"subjects"`
}

// Lookup is an in-memory full-text index over a filtered corpus, used
// for the phase-one "find the query record" search. Read-only after
// construction; safe for concurrent searches.
type Lookup struct {
	index   bleve.Index
	records []models.Record
}

// NewLookup indexes title, creator, and subjects of every record.
// Document ids are the corpus indices, so hits map straight back to the
// filtered set.
func NewLookup(records []models.Record) (*Lookup, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming): subject
	// headings and names should match as typed.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("title", textFieldMapping)
	docMapping.AddFieldMappingsAt("creator", textFieldMapping)
	docMapping.AddFieldMappingsAt("subjects", textFieldMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("create lookup index: %w", err)
	}

	batch := index.NewBatch()
	for i, rec := range records {
		doc := lookupDoc{
			Title:    rec.Title,
			Creator:  rec.Creator,
			Subjects: rec.FacetText(models.FacetSubjects),
		}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("index record %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("index corpus: %w", err)
	}
	return &Lookup{index: index, records: records}, nil
}

// Search returns up to limit candidates matching query, best first.
// An empty result is a valid "nothing matched" outcome.
func (l *Lookup) Search(query string, limit int) ([]models.Candidate, error) {
	if limit <= 0 {
		limit = 10
	}
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := l.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("candidate search: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(res.Hits))
	for _, hit := range res.Hits {
		idx, err := strconv.Atoi(hit.ID)
		if err != nil || idx < 0 || idx >= len(l.records) {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Record: idx,
			Title:  l.records[idx].Title,
			Year:   l.records[idx].Year,
			Score:  hit.Score,
		})
	}
	// Bleve already orders by score; keep index order among equal scores
	// for determinism.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})
	return candidates, nil
}

// Close releases the index.
func (l *Lookup) Close() error {
	return l.index.Close()
}
