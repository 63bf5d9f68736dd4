package handlers

import (
	"net/http"
	"time"
	"transit-items-service/internal/api/dto"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	StartedAt time.Time
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	// time.Since uses the monotonic clock, so uptime never decreases.
	res := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.StartedAt).Seconds(),
	}
	writeJSON(w, r, http.StatusOK, res)
}
