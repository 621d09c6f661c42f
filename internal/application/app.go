// Package application assembles the service from its parts: configuration,
// logging, catalog snapshot, converters, resolver, search engine, storage
// and the HTTP server.
package application

import (
	"context"
	"path/filepath"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/conversion"
	redisdb "github.com/glycoshape/glycoshape-api/internal/infrastructure/database/redis"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/prometheus"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage/disk"
	miniostore "github.com/glycoshape/glycoshape-api/internal/infrastructure/storage/minio"
	httpiface "github.com/glycoshape/glycoshape-api/internal/interfaces/http"
	"github.com/glycoshape/glycoshape-api/internal/interfaces/http/handlers"
	"github.com/glycoshape/glycoshape-api/internal/resolver"
	"github.com/glycoshape/glycoshape-api/internal/search"
)

// App holds the assembled service.
type App struct {
	Config     *config.Config
	Logger     logging.Logger
	Catalog    *catalog.Index
	Resolver   *resolver.Service
	Normalizer *resolver.Normalizer
	Search     *search.Engine
	Store      storage.Store
	Metrics    *prometheus.Metrics
	Server     *httpiface.Server

	cache *redisdb.Cache
}

// New builds the full service from configuration. Optional pieces (Redis,
// MinIO) are only wired when configured.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(log)

	catalogPath := cfg.Database.CatalogFile
	if !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(cfg.Database.Dir, catalogPath)
	}
	index, err := catalog.Load(catalogPath, log)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Logger: log, Catalog: index}

	app.Metrics = prometheus.NewMetrics("glycoshape")
	app.Metrics.SetCatalogRecords(index.Len())

	var converter conversion.IUPACConverter = conversion.NewGlyCosmosClient(cfg.Conversion, app.Metrics, log)
	if cfg.Redis.Enabled {
		client, err := redisdb.NewClient(cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		app.cache = redisdb.NewCache(client, cfg.Redis.TTL, log)
		converter = conversion.NewCachedIUPACConverter(converter, app.cache, app.Metrics, log)
	}

	app.Normalizer = resolver.NewNormalizer(converter, log)
	probe := disk.NewProbe(cfg.Database.RawDataDir, cfg.Database.UploadDir)
	app.Resolver = resolver.NewService(index, app.Normalizer, probe, log)
	app.Search = search.NewEngine(index, cfg.Search, log)

	switch cfg.Storage.Backend {
	case "minio":
		store, err := miniostore.NewStore(ctx, cfg.Storage.Minio, log)
		if err != nil {
			return nil, err
		}
		app.Store = store
	default:
		app.Store = disk.NewStore(cfg.Database.Dir)
	}

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Glycan:  handlers.NewGlycanHandler(index, app.Resolver, app.Store, app.Metrics, log),
		Search:  handlers.NewSearchHandler(app.Search, app.Metrics, log),
		Files:   handlers.NewFileHandler(app.Store, log),
		Request: handlers.NewRequestHandler(filepath.Join(cfg.Database.Dir, "request.txt"), cfg.Server.AccessPin, log),
		Health:  handlers.NewHealthHandler(index),
		Metrics: app.Metrics,
		Config:  cfg,
		Logger:  log,
	})
	app.Server = httpiface.NewServer(cfg.Server, router, log)

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		err := a.Server.Shutdown(context.Background())
		a.Close()
		return err
	}
}

// Close releases held resources.
func (a *App) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
}
