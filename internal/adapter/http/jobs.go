package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListJobs returns the last run of every job that has run at least
// once, ordered by name.
func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"jobs": h.status.Statuses()})
}

// handleGetJob returns the last run of the job bound to {name}. Unknown or
// not yet run jobs produce HTTP 404.
func (h *Handler) handleGetJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	st, ok := h.status.Status(name)
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
