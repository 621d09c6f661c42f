// Package handlers implements the HTTP endpoint handlers. Handlers decode
// and validate input, call the domain services and shape the response; no
// resolution or search logic lives here.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps the error's code to an HTTP status and writes the
// uniform error body.
func respondError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
		if appErr.Detail != "" {
			msg = appErr.Message + ": " + appErr.Detail
		}
	}
	respondJSON(w, code.HTTPStatus(), types.ErrorResponse{
		Error: msg,
		Code:  code.String(),
	})
}

// decodeJSON reads a request body into dest with a sane size cap.
func decodeJSON(r *http.Request, dest interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dest); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "decoding request body")
	}
	return nil
}
