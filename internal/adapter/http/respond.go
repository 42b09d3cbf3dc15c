package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"groupbuy/internal/api"
	"groupbuy/internal/core/domain"
)

const maxBodyBytes = 1 << 20

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the header is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto the error taxonomy. Unexpected errors are logged
// and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := api.ErrorFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		h.writeError(w, r, &domain.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, &domain.ValidationError{Field: "id", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
