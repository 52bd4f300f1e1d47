// Package models defines core data structures for catalog records, weight
// profiles, and scored recommendation results.
package models

import "strings"

// UntitledPlaceholder is used for records whose title field is absent or
// scalarizes to an empty string.
const UntitledPlaceholder = "(untitled)"

// RawRecord is one record object from the source document, untouched.
// Values are arbitrarily shaped (string, number, bool, list, map, or
// missing); all access goes through the scalar package.
type RawRecord map[string]any

// Record is the normalized, immutable view of one RawRecord.
// Deriving it from the same RawRecord always yields the same Record.
type Record struct {
	Title       string    `json:"title"`
	Subjects    []string  `json:"subjects"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	Publisher   string    `json:"publisher"`
	// Year is the 4-digit publication year, nil when no candidate field
	// contains one.
	Year *int `json:"year,omitempty"`
	// Pages is the largest "<n>p" measurement found in the extent field,
	// nil when none is found.
	Pages *int `json:"pages,omitempty"`
	// Raw keeps the source record for incidental display fields.
	Raw RawRecord `json:"-"`
}

// Facet names one textual dimension of a record that is indexed and
// scored independently.
type Facet string

const (
	FacetSubjects    Facet = "subjects"
	FacetDescription Facet = "description"
	FacetCreator     Facet = "creator"
	FacetPublisher   Facet = "publisher"
	FacetTitle       Facet = "title"
)

// DefaultFacets is the facet set used when a caller does not choose one.
// Title is excluded by default; it can be opted in via configuration.
func DefaultFacets() []Facet {
	return []Facet{FacetSubjects, FacetDescription, FacetCreator, FacetPublisher}
}

// FacetText returns the record's text for one facet. Subjects are joined
// by a space, matching how they are vectorized.
func (r *Record) FacetText(f Facet) string {
	switch f {
	case FacetSubjects:
		return strings.Join(r.Subjects, " ")
	case FacetDescription:
		return r.Description
	case FacetCreator:
		return r.Creator
	case FacetPublisher:
		return r.Publisher
	case FacetTitle:
		return r.Title
	default:
		return ""
	}
}
