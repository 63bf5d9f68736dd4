package api

import (
	"net/http"
	"time"
	"transit-items-service/internal/api/handlers"
	"transit-items-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	// ShowErrorDetail exposes raw error text in 500 responses.
	ShowErrorDetail bool
	// StartedAt is the process start used for health uptime.
	StartedAt time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ItemRepository, provider ports.TransitProvider, opts Options) http.Handler {
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}

	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{StartedAt: opts.StartedAt}
	itemHandler := &handlers.ItemHandler{Repo: repo, ShowErrorDetail: opts.ShowErrorDetail}
	busHandler := &handlers.BusHandler{Provider: provider, ShowErrorDetail: opts.ShowErrorDetail}

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/items", itemHandler.List)
	mux.HandleFunc("POST /api/items", itemHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemHandler.Delete)

	mux.HandleFunc("GET /api/buses/{stopName}", busHandler.Lookup)

	mux.HandleFunc("/", handlers.NotFound)

	return chain(mux,
		requestIDMiddleware,
		loggingMiddleware,
		metricsMiddleware,
		recoveryMiddleware(opts.ShowErrorDetail),
		corsMiddleware,
		securityHeadersMiddleware,
	)
}
