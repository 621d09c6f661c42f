// Package http assembles the chi router and the HTTP server around the
// endpoint handlers.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/prometheus"
	"github.com/glycoshape/glycoshape-api/internal/interfaces/http/handlers"
	"github.com/glycoshape/glycoshape-api/internal/interfaces/http/middleware"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Glycan  *handlers.GlycanHandler
	Search  *handlers.SearchHandler
	Files   *handlers.FileHandler
	Request *handlers.RequestHandler
	Health  *handlers.HealthHandler
	Metrics *prometheus.Metrics
	Config  *config.Config
	Logger  logging.Logger
}

// NewRouter builds the route tree with the standard middleware chain.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", deps.Health.Live)
	r.Get("/readyz", deps.Health.Ready)
	if deps.Metrics != nil && deps.Config.Metrics.Enabled {
		r.Handle(deps.Config.Metrics.Path, deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/available", deps.Glycan.Available)
		r.Get("/exist/{identifier}", deps.Glycan.Exist)
		r.Get("/glycan/{identifier}", deps.Glycan.Get)
		r.Get("/pdb/{identifier}", deps.Glycan.PDB)
		r.Get("/svg/{identifier}", deps.Glycan.SNFG)
		r.Post("/search", deps.Search.Search)
		r.Post("/request", deps.Request.Submit)
		r.Get("/access/{pin}", deps.Request.Access)
	})

	r.Get("/database/*", deps.Files.Serve)

	return r
}
