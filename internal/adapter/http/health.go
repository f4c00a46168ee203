package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"promo-scheduler/internal/core/domain"
)

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth reports HTTP 503 when the database is unreachable or the
// last run of any job failed outright. Partial runs are healthy.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Checks: map[string]string{}}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		err := h.db.Ping(ctx)
		cancel()
		if err != nil {
			h.logger.Warn("health check database ping failed", slog.Any("error", err))
			resp.Status = "unavailable"
			resp.Checks["database"] = "unreachable"
		} else {
			resp.Checks["database"] = "ok"
		}
	}
	for _, st := range h.status.Statuses() {
		resp.Checks[st.Name] = string(st.Outcome)
		if st.Outcome == domain.OutcomeFailure {
			resp.Status = "unavailable"
		}
	}

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, resp)
}
