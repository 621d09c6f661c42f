package handlers

import (
	"net/http"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	index *catalog.Index
}

// NewHealthHandler wires the catalog used for readiness.
func NewHealthHandler(index *catalog.Index) *HealthHandler {
	return &HealthHandler{index: index}
}

// Live always reports OK while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports OK once the catalog snapshot has records.
func (h *HealthHandler) Ready(w http.ResponseWriter, _ *http.Request) {
	if h.index == nil || h.index.Len() == 0 {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "catalog not loaded"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": h.index.Len(),
	})
}
