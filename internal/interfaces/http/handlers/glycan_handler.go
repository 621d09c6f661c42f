package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/prometheus"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	"github.com/glycoshape/glycoshape-api/internal/resolver"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

// GlycanHandler serves catalog lookups and per-entry structure files.
type GlycanHandler struct {
	index    *catalog.Index
	resolver *resolver.Service
	store    storage.Store
	metrics  *prometheus.Metrics
	log      logging.Logger
}

// NewGlycanHandler wires the handler's collaborators.
func NewGlycanHandler(
	index *catalog.Index,
	res *resolver.Service,
	store storage.Store,
	metrics *prometheus.Metrics,
	log logging.Logger,
) *GlycanHandler {
	return &GlycanHandler{
		index:    index,
		resolver: res,
		store:    store,
		metrics:  metrics,
		log:      log.Named("glycan_handler"),
	}
}

// Available lists every GlyTouCan accession present in the catalog across
// all variants.
func (h *GlycanHandler) Available(w http.ResponseWriter, r *http.Request) {
	accessions := make([]string, 0, h.index.Len())
	for _, rec := range h.index.Records() {
		rec.Variants(func(_ glycan.Anomer, v *glycan.Variant) bool {
			if v.GlyTouCan != "" {
				accessions = append(accessions, v.GlyTouCan)
			}
			return true
		})
	}
	respondJSON(w, http.StatusOK, accessions)
}

// Exist answers whether an identifier is known, via any resolution channel.
func (h *GlycanHandler) Exist(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	result := h.resolver.Exists(r.Context(), identifier)
	if h.metrics != nil {
		// The channel set is fixed, so it is safe as a label; the reason
		// string is not, it can embed folder names.
		h.metrics.ObserveResolution(result.Channel)
	}
	resp := types.ExistResponse{
		Exists: result.Found,
		Reason: result.Reason,
	}
	if result.Found {
		resp.Channel = result.Channel
		resp.Anomer = string(result.Anomer)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Get returns the full record for an identifier.
func (h *GlycanHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	rec, err := h.resolver.GetRecord(r.Context(), identifier)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// PDB streams the representative structure file for an identifier. The file
// for the matched anomer is preferred; the other anomer's file substitutes
// when it is absent.
func (h *GlycanHandler) PDB(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	entryID, anomer, err := h.resolver.ResolveEntryFiles(r.Context(), identifier)
	if err != nil {
		respondError(w, err)
		return
	}

	rc, served, err := storage.OpenFirst(r.Context(), h.store, storage.PDBCandidates(entryID, anomer))
	if err != nil {
		respondError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "chemical/x-pdb")
	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(served)+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		h.log.Warn("streaming structure file interrupted",
			logging.String("path", served),
			logging.Err(err),
		)
	}
}

// SNFG streams the entry's SNFG diagram.
func (h *GlycanHandler) SNFG(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	entryID, _, err := h.resolver.ResolveEntryFiles(r.Context(), identifier)
	if err != nil {
		respondError(w, err)
		return
	}

	rc, err := h.store.Open(r.Context(), storage.SNFGPath(entryID))
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(w, apperrors.New(apperrors.ErrCodeNotFound, "SVG file not found"))
			return
		}
		respondError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = io.Copy(w, rc)
}
