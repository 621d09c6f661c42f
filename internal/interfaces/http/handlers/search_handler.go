package handlers

import (
	"net/http"
	"strings"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/prometheus"
	"github.com/glycoshape/glycoshape-api/internal/search"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

// SearchHandler serves POST /api/search.
type SearchHandler struct {
	engine  *search.Engine
	metrics *prometheus.Metrics
	log     logging.Logger
}

// NewSearchHandler wires the handler's collaborators.
func NewSearchHandler(engine *search.Engine, metrics *prometheus.Metrics, log logging.Logger) *SearchHandler {
	return &SearchHandler{engine: engine, metrics: metrics, log: log.Named("search_handler")}
}

// Search ranks the catalog against the query. The mode is picked from
// search_type when set ("wurcs", "end", "all" or a category name),
// otherwise from the query itself: a category name filters by class, WURCS
// input ranks structurally, everything else falls back to free-text fuzzy
// matching.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	query := strings.TrimSpace(req.SearchString)
	if query == "" {
		respondError(w, apperrors.InvalidParam("search_string is required"))
		return
	}

	hits, searchType, err := h.dispatch(query, req.SearchType)
	if err != nil {
		respondError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveSearch(searchType)
	}

	results := make([]types.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, types.SearchResult{
			GlyTouCan: hit.Record.Archetype.GlyTouCan,
			ID:        hit.Record.InternalID,
			Mass:      hit.Record.Archetype.Mass,
			Score:     hit.Score,
		})
	}
	respondJSON(w, http.StatusOK, types.SearchResponse{
		SearchString: req.SearchString,
		SearchType:   searchType,
		Results:      results,
	})
}

func (h *SearchHandler) dispatch(query, searchType string) ([]search.Hit, string, error) {
	switch {
	case searchType == "wurcs":
		hits, err := h.engine.Structural(query)
		if err != nil {
			return nil, "", err
		}
		return hits, "wurcs", nil

	case searchType == "end":
		return h.engine.EndResidue(query), "end", nil

	case searchType == "all":
		return h.engine.All(), "all", nil

	case searchType != "":
		if cat, ok := glycan.KnownCategory(searchType); ok {
			return h.engine.Category(cat), searchType, nil
		}
		return nil, "", apperrors.InvalidParam("unknown search_type " + searchType)
	}

	if cat, ok := glycan.KnownCategory(query); ok {
		return h.engine.Category(cat), string(cat), nil
	}
	if glycan.DetectNotation(query) == glycan.NotationWURCS {
		hits, err := h.engine.Structural(query)
		if err != nil {
			return nil, "", err
		}
		return hits, "wurcs", nil
	}
	return h.engine.FreeText(query), "text", nil
}
