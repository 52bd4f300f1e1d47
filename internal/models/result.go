package models

// ScoredResult is a single recommendation hit. Created fresh per query,
// never persisted.
type ScoredResult struct {
	// Record is the index of the hit within the filtered set.
	Record int `json:"record"`
	// ContentScore is the weighted sum of per-facet cosine similarities.
	ContentScore float64 `json:"content_score"`
	// FinalScore blends ContentScore with the recency weight and is what
	// results are ranked by.
	FinalScore float64 `json:"final_score"`
	// RelatedKeywords are representative subject terms of the hit, biased
	// toward overlap with the query's keywords.
	RelatedKeywords []string `json:"related_keywords,omitempty"`
	Rank            int      `json:"rank"`
}

// Candidate is a phase-one search hit used to select a query record
// before asking for recommendations.
type Candidate struct {
	Record int     `json:"record"`
	Title  string  `json:"title"`
	Year   *int    `json:"year,omitempty"`
	Score  float64 `json:"score"`
}
