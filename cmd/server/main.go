package main

import (
	"log"
	"net/http"
	"time"
	"transit-items-service/internal/adapters/repositories"
	"transit-items-service/internal/adapters/transit"
	"transit-items-service/internal/api"
	"transit-items-service/internal/config"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (mock items, SL transit) behind ports and starts the HTTP server.
func main() {
	startedAt := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Bus lookups fail upstream without a key, but items and health still work.
	if cfg.TransitAPIKey == "" {
		log.Println("TRANSIT_API_KEY is not set; bus lookups will be rejected upstream")
	}

	provider, err := transit.NewSLProvider(cfg.TransitAPIKey, cfg.TransitBaseURL, cfg.TransitTimeout)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewMockItemRepository()
	router := api.NewRouter(repo, provider, api.Options{
		ShowErrorDetail: cfg.Development(),
		StartedAt:       startedAt,
	})

	// WriteTimeout leaves room for the upstream timeout on both lookup calls.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.TransitTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server listening addr=%s env=%s", cfg.Addr(), cfg.Env)
	log.Printf("Health check: http://localhost:%s/health", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
