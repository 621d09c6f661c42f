package handlers

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

// RequestHandler records glycan addition requests and checks raw-data
// access pins.
type RequestHandler struct {
	requestFile string
	accessPin   string
	mu          sync.Mutex
	log         logging.Logger
}

// NewRequestHandler wires the handler. requestFile receives one accession
// per line; accessPin may be empty to disable pin access entirely.
func NewRequestHandler(requestFile, accessPin string, log logging.Logger) *RequestHandler {
	return &RequestHandler{
		requestFile: requestFile,
		accessPin:   accessPin,
		log:         log.Named("request_handler"),
	}
}

// Submit appends a requested accession to the request file.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req types.GlycanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	accession := strings.TrimSpace(req.GlyTouCan)
	if accession == "" {
		respondError(w, apperrors.InvalidParam("no glytoucan provided"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	f, err := os.OpenFile(h.requestFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		respondError(w, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "opening request file"))
		return
	}
	defer f.Close()
	line := accession
	if req.Comment != "" {
		line += "\t" + strings.ReplaceAll(req.Comment, "\n", " ")
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		respondError(w, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "recording request"))
		return
	}

	h.log.Info("glycan request recorded", logging.String("glytoucan", accession))
	respondJSON(w, http.StatusOK, types.MessageResponse{Message: "Request added successfully"})
}

// Access checks the supplied pin against the configured one.
func (h *RequestHandler) Access(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")
	authenticated := h.accessPin != "" &&
		subtle.ConstantTimeCompare([]byte(pin), []byte(h.accessPin)) == 1
	respondJSON(w, http.StatusOK, types.AccessResponse{Authenticated: authenticated})
}
