package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/chainscope/chainscope/internal/archive"
	"github.com/chainscope/chainscope/internal/logger"
	"github.com/chainscope/chainscope/internal/platform"
	"github.com/chainscope/chainscope/pkg/config"
	"github.com/chainscope/chainscope/pkg/projects"
	"github.com/chainscope/chainscope/pkg/scoring"
)

// setup loads config and builds the logger every subcommand shares.
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

// buildRegistry scores the project definitions against the configured
// catalog.
func buildRegistry(cfg *config.Config) (*projects.Registry, scoring.Catalog, error) {
	catalog, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}
	engine, err := scoring.NewEngine(catalog, scoring.DefaultWeights())
	if err != nil {
		return nil, nil, err
	}
	registry, err := projects.NewRegistry(engine, projects.DefaultDefinitions())
	if err != nil {
		return nil, nil, err
	}
	return registry, catalog, nil
}

// openDatabase connects to Postgres and applies pending migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := platform.AutoMigrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// buildObjectStore creates the snapshot storage backend named by the
// config. Returns nil when no backend is configured.
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
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
