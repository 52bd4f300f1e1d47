package recommend

import (
	"errors"
	"fmt"

	"github.com/hyperjump/osusume/internal/models"
)

// ErrNoRankableContent reports that every configured facet had an empty
// corpus, leaving nothing to rank by.
var ErrNoRankableContent = errors.New("no rankable content in any facet")

// ErrUnknownQueryRecord reports a record-to-record query whose record
// index is not present in the snapshot's filtered set.
var ErrUnknownQueryRecord = errors.New("query record not in filtered set")

// ErrUnknownSnapshot reports a query against a snapshot id that does not
// exist (or was invalidated by a catalog reload).
var ErrUnknownSnapshot = errors.New("unknown snapshot")

// EmptyCorpusError reports that one facet's corpus was entirely empty
// when fitting its vector space. The facet contributes zero similarity;
// ranking proceeds on the remaining facets.
type EmptyCorpusError struct {
	Facet models.Facet
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("facet %q has an empty corpus", e.Facet)
}
