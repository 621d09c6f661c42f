package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// FileHandler serves raw files from the database tree under /database/.
type FileHandler struct {
	store storage.Store
	log   logging.Logger
}

// NewFileHandler wires the handler's store.
func NewFileHandler(store storage.Store, log logging.Logger) *FileHandler {
	return &FileHandler{store: store, log: log.Named("file_handler")}
}

// Serve streams the file at the wildcard path. The store clamps paths to
// its root, so traversal attempts fall out as not-found or bad-request.
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filePath := chi.URLParam(r, "*")
	if filePath == "" {
		respondError(w, apperrors.InvalidParam("file path is required"))
		return
	}

	rc, err := h.store.Open(r.Context(), filePath)
	if err != nil {
		respondError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(filePath)+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		h.log.Warn("file download interrupted",
			logging.String("path", filePath),
			logging.Err(err),
		)
	}
}
