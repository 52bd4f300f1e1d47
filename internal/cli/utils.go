// Package cli provides output formatting for the Osusume CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteResults writes scored results to w in the given format. records
// is the filtered set the result indices refer to.
func WriteResults(w io.Writer, results []models.ScoredResult, records []models.Record, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}
	fmt.Fprintf(w, "\n%d recommendations\n\n", len(results))
	for _, res := range results {
		rec := records[res.Record]
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.4f (content: %.4f)\n", res.Rank, res.FinalScore, res.ContentScore)
		fmt.Fprintf(w, "Title: %s\n", rec.Title)
		if rec.Creator != "" {
			fmt.Fprintf(w, "Creator: %s\n", rec.Creator)
		}
		if rec.Year != nil {
			fmt.Fprintf(w, "Year: %d\n", *rec.Year)
		}
		if len(res.RelatedKeywords) > 0 {
			fmt.Fprintf(w, "Keywords: %s\n", strings.Join(res.RelatedKeywords, ", "))
		}
		if rec.Description != "" {
			fmt.Fprintf(w, "\n%s\n", utils.Truncate(rec.Description, 200))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteCandidates writes phase-one search hits to w.
func WriteCandidates(w io.Writer, candidates []models.Candidate, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No matching records.")
		return nil
	}
	fmt.Fprintf(w, "\n%d matching records\n\n", len(candidates))
	for _, c := range candidates {
		year := ""
		if c.Year != nil {
			year = fmt.Sprintf(" (%d)", *c.Year)
		}
		fmt.Fprintf(w, "  [%d] %s%s\n", c.Record, c.Title, year)
	}
	fmt.Fprintln(w)
	return nil
}
