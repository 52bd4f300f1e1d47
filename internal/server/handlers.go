package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/osusume/internal/models"
	"github.com/hyperjump/osusume/internal/recommend"
)

// snapshotRequest selects the filter and facet set for a new snapshot.
// IncludeMissingPages is a pointer so an absent field falls back to the
// configured default while an explicit false is honored.
type snapshotRequest struct {
	MinPages            int            `json:"min_pages"`
	MaxPages            int            `json:"max_pages"`
	IncludeMissingPages *bool          `json:"include_missing_pages"`
	Facets              []models.Facet `json:"facets,omitempty"`
}

// snapshotResponse returns the snapshot handle for follow-up queries.
type snapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
	Records    int    `json:"records"`
	// EmptyFacets lists facets that had no text anywhere in the filtered
	// set; they contribute zero similarity.
	EmptyFacets []models.Facet `json:"empty_facets,omitempty"`
}

func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pageRange := models.PageRange{Min: req.MinPages, Max: req.MaxPages}
	if pageRange.Max == 0 {
		pageRange = s.config.Filter.PageRange()
	}
	includeMissing := s.config.Filter.IncludeMissingPages
	if req.IncludeMissingPages != nil {
		includeMissing = *req.IncludeMissingPages
	}
	facets := req.Facets
	if len(facets) == 0 {
		facets = s.config.Ranking.Facets
	}

	snap, err := s.engine.Snapshot(pageRange, includeMissing, facets)
	if err != nil {
		s.logger.Error("snapshot failed", zap.Error(err))
		s.respondError(w, statusFor(err), err.Error())
		return
	}

	resp := snapshotResponse{SnapshotID: snap.ID, Records: len(snap.Set.Records)}
	if snap.Index != nil {
		for _, ec := range snap.Index.EmptyFacets() {
			resp.EmptyFacets = append(resp.EmptyFacets, ec.Facet)
		}
	}
	s.respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 || idx >= len(snap.Set.Records) {
		s.respondError(w, http.StatusNotFound, "record not found")
		return
	}
	s.respondJSON(w, http.StatusOK, snap.Set.Records[idx])
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query cannot be empty")
		return
	}
	if req.Limit <= 0 {
		req.Limit = s.config.Search.CandidateLimit
	}
	s.logger.Debug("candidate search", zap.String("query", req.Query), zap.Int("limit", req.Limit))

	candidates, err := s.engine.Search(chi.URLParam(r, "id"), req.Query, req.Limit)
	if err != nil {
		s.respondError(w, statusFor(err), err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"total":      len(candidates),
	})
}

func (s *Server) handleRecommendRecord(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("recommend by record", zap.Int("record", req.Record), zap.Int("top_n", req.TopN))

	results, err := s.engine.RecommendByRecord(chi.URLParam(r, "id"), req)
	if err != nil {
		s.logger.Error("recommendation failed", zap.Error(err))
		s.respondError(w, statusFor(err), err.Error())
		return
	}
	s.respondResults(w, results)
}

func (s *Server) handleRecommendKeywords(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" && len(req.Keywords) == 0 {
		s.respondError(w, http.StatusBadRequest, "query or keywords required")
		return
	}
	s.logger.Debug("recommend by keywords", zap.String("query", req.Query), zap.Int("keywords", len(req.Keywords)))

	results, err := s.engine.RecommendByKeywords(chi.URLParam(r, "id"), req)
	if err != nil {
		s.logger.Error("recommendation failed", zap.Error(err))
		s.respondError(w, statusFor(err), err.Error())
		return
	}
	s.respondResults(w, results)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": len(s.engine.Records()),
	})
}

// statusFor maps engine errors to HTTP status codes. Unknown snapshots
// are 404 (stale ids after a catalog reload land here too); a bad query
// record is the caller's mistake.
func statusFor(err error) int {
	switch {
	case errors.Is(err, recommend.ErrUnknownSnapshot):
		return http.StatusNotFound
	case errors.Is(err, recommend.ErrUnknownQueryRecord):
		return http.StatusBadRequest
	case errors.Is(err, recommend.ErrNoRankableContent):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondResults(w http.ResponseWriter, results []models.ScoredResult) {
	if results == nil {
		results = []models.ScoredResult{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"total":   len(results),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
