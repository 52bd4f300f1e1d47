// Package tfidf provides a per-facet TF-IDF vector space: fit a corpus
// of facet texts once, then represent corpus rows and arbitrary query
// strings as sparse, L2-normalized term-weight vectors.
package tfidf

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// ErrEmptyCorpus reports a fit over a corpus whose documents produce no
// terms at all. Callers treat the affected facet as contributing zero
// similarity rather than aborting the whole ranking.
var ErrEmptyCorpus = errors.New("tfidf: every document in the corpus is empty")

// Vector is a sparse term-weight vector keyed by vocabulary index.
// Vectors produced by this package are L2-normalized, so their dot
// product is the cosine similarity.
type Vector map[int]float64

// Model is a fitted TF-IDF space over one corpus. Read-only after Fit;
// safe for concurrent Transform calls.
type Model struct {
	vocab map[string]int
	idf   []float64
	rows  []Vector
}

// Fit builds a model over docs, one string per corpus row (rows may be
// empty strings). Term weight is raw term frequency times smoothed
// inverse document frequency, ln((1+N)/(1+df))+1, with each row
// L2-normalized. Returns ErrEmptyCorpus when no document yields a term.
func Fit(docs []string) (*Model, error) {
	m := &Model{vocab: make(map[string]int)}

	tokenized := make([][]string, len(docs))
	df := []int{}
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[int]bool, len(tokens))
		for _, tok := range tokens {
			id, ok := m.vocab[tok]
			if !ok {
				id = len(m.vocab)
				m.vocab[tok] = id
				df = append(df, 0)
			}
			if !seen[id] {
				seen[id] = true
				df[id]++
			}
		}
	}
	if len(m.vocab) == 0 {
		return nil, ErrEmptyCorpus
	}

	n := float64(len(docs))
	m.idf = make([]float64, len(df))
	for id, count := range df {
		m.idf[id] = math.Log((1+n)/(1+float64(count))) + 1
	}

	m.rows = make([]Vector, len(docs))
	for i, tokens := range tokenized {
		m.rows[i] = m.weigh(tokens)
	}
	return m, nil
}

// Rows returns the corpus row vectors in fit order. The slice and its
// vectors must not be modified.
func (m *Model) Rows() []Vector {
	return m.rows
}

// VocabSize returns the number of distinct terms in the fitted space.
func (m *Model) VocabSize() int {
	return len(m.vocab)
}

// Transform projects an arbitrary string into the fitted space.
// Out-of-vocabulary terms contribute nothing; a query with no known
// terms yields an empty (zero) vector.
func (m *Model) Transform(query string) Vector {
	return m.weigh(Tokenize(query))
}

func (m *Model) weigh(tokens []string) Vector {
	v := make(Vector)
	for _, tok := range tokens {
		if id, ok := m.vocab[tok]; ok {
			v[id] += m.idf[id]
		}
	}
	normalize(v)
	return v
}

func normalize(v Vector) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := 1 / math.Sqrt(sum)
	for id := range v {
		v[id] *= norm
	}
}

// Tokenize lowercases s and splits it on anything that is not a letter
// or digit. CJK text splits on whitespace and punctuation like any
// other script; subject headings survive as single terms.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
