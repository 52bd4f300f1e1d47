package catalog

import (
	"reflect"
	"testing"

	"github.com/hyperjump/osusume/internal/models"
)

func pagedRecord(title string, pages *int) models.Record {
	return models.Record{Title: title, Pages: pages}
}

func intp(n int) *int { return &n }

func TestFilter(t *testing.T) {
	records := []models.Record{
		pagedRecord("in-range low", intp(100)),
		pagedRecord("below", intp(50)),
		pagedRecord("in-range high", intp(200)),
		pagedRecord("above", intp(900)),
		pagedRecord("missing", nil),
	}
	pageRange := models.PageRange{Min: 100, Max: 200}

	t.Run("excluding missing pages", func(t *testing.T) {
		set := Filter(records, pageRange, false)
		var titles []string
		for _, r := range set.Records {
			titles = append(titles, r.Title)
		}
		want := []string{"in-range low", "in-range high"}
		if !reflect.DeepEqual(titles, want) {
			t.Errorf("kept %v, want %v", titles, want)
		}
		if !reflect.DeepEqual(set.Source, []int{0, 2}) {
			t.Errorf("source indices = %v, want [0 2]", set.Source)
		}
	})

	t.Run("including missing pages", func(t *testing.T) {
		set := Filter(records, pageRange, true)
		if len(set.Records) != 3 {
			t.Fatalf("kept %d records, want 3", len(set.Records))
		}
		if set.Records[2].Title != "missing" {
			t.Errorf("missing-pages record not kept in order: %+v", set.Records)
		}
	})

	t.Run("nothing passes", func(t *testing.T) {
		set := Filter(records, models.PageRange{Min: 5000, Max: 6000}, false)
		if !set.Empty() {
			t.Errorf("expected empty set, got %d records", len(set.Records))
		}
	})
}
