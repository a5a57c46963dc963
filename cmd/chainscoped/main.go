// Command chainscoped is the Chainscope API service.
// It serves the public score and metrics endpoints, the snapshot history
// endpoints, the archive trigger, and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/chainscope/chainscope/internal/api"
	"github.com/chainscope/chainscope/internal/archive"
	"github.com/chainscope/chainscope/internal/logger"
	"github.com/chainscope/chainscope/internal/platform"
	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/config"
	"github.com/chainscope/chainscope/pkg/metrics"
	"github.com/chainscope/chainscope/pkg/projects"
	"github.com/chainscope/chainscope/pkg/scoring"
)

func main() {
	configPath := flag.String("config", "chainscope.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	if err := platform.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	engine, err := scoring.NewEngine(catalog, scoring.DefaultWeights())
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}
	registry, err := projects.NewRegistry(engine, projects.DefaultDefinitions())
	if err != nil {
		log.Fatal().Err(err).Msg("build registry")
	}

	liveStore := store.NewPostgresStore(db)

	// Snapshot storage is optional; without it the history, sparkline,
	// and archive endpoints report a configuration error.
	var archiveSvc *archive.Service
	ctx := context.Background()
	objects, err := buildObjectStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build object store")
	}
	if objects != nil {
		archiveSvc = archive.NewService(objects, liveStore, registry,
			logger.ForComponent(log, "archive"))
	} else {
		log.Warn().Msg("no storage backend configured; archive endpoints disabled")
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = api.DefaultCacheTTL
	}
	handler := api.NewHandler(liveStore, archiveSvc, registry,
		api.NewFetchCache[metrics.MetricsData](ttl),
		api.NewFetchCache[map[string]metrics.MetricsData](ttl),
		logger.ForComponent(log, "api"))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, api.APIKeyAuth(cfg.Server.APIKey))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting chainscoped")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func buildObjectStore(ctx context.Context, cfg *config.Config) (archive.ObjectStore, error) {
	switch cfg.Storage.Backend {
	case "local":
		return archive.NewLocalStore(cfg.Storage.LocalDir), nil
	case "s3":
		return archive.NewS3Store(ctx, archive.S3Config{
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
		})
	case "gcs":
		return archive.NewGCSStore(ctx, cfg.Storage.GCSBucket)
	case "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
