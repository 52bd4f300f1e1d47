package tfidf

// Cosine returns the cosine similarity of two vectors. Vectors from this
// package are already L2-normalized, so this is their dot product; a
// zero vector is 0-similar to everything, never NaN.
func Cosine(a, b Vector) float64 {
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for id, w := range a {
		if bw, ok := b[id]; ok {
			dot += w * bw
		}
	}
	return dot
}

// SimilarityToAll returns the cosine similarity of q against every row,
// in row order.
func SimilarityToAll(q Vector, rows []Vector) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = Cosine(q, row)
	}
	return out
}
