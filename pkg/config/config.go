// Package config handles loading and managing Chainscope configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chainscope/chainscope/pkg/scoring"
)

// Config is the top-level configuration for the Chainscope CLI and daemon.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Fetch    FetchConfig    `yaml:"fetch"`
}

// ServerConfig controls the API daemon.
type ServerConfig struct {
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"` // protects the archive trigger; empty disables auth
}

// DatabaseConfig points at the live-metrics Postgres database.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// StorageConfig selects the snapshot object-storage backend.
type StorageConfig struct {
	Backend   string   `yaml:"backend"` // local, s3, gcs, or "" for none
	LocalDir  string   `yaml:"local_dir"`
	S3        S3Config `yaml:"s3"`
	GCSBucket string   `yaml:"gcs_bucket"`
}

// S3Config holds S3 (or S3-compatible) settings.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// CacheConfig controls the API metric caches.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// CatalogConfig optionally overrides the built-in criterion catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// FetchConfig overrides the public endpoints the fetchers talk to.
type FetchConfig struct {
	EthereumAPI string `yaml:"ethereum_api"`
	SolanaRPC   string `yaml:"solana_rpc"`
	CosmosLCD   string `yaml:"cosmos_lcd"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{URL: "postgres://localhost:5432/chainscope?sslmode=disable"},
		Storage:  StorageConfig{Backend: "local", LocalDir: "/tmp/chainscope-snapshots"},
		Cache:    CacheConfig{TTLSeconds: 300},
	}
}

// Load reads a config file from the given path and applies environment
// overrides. If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets deployment environments override file settings. Secrets
// belong here, not in the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("CHAINSCOPE_API_KEY"); v != "" {
		c.Server.APIKey = v
	}
	if v := os.Getenv("CHAINSCOPE_S3_ACCESS_KEY"); v != "" {
		c.Storage.S3.AccessKey = v
	}
	if v := os.Getenv("CHAINSCOPE_S3_SECRET_KEY"); v != "" {
		c.Storage.S3.SecretKey = v
	}
}

type catalogFile struct {
	Criteria scoring.Catalog `yaml:"criteria"`
}

// LoadCatalog reads a criterion catalog override from path, or returns the
// built-in catalog when path is empty. The catalog is validated here so a
// malformed file fails at startup, not per request.
func LoadCatalog(path string) (scoring.Catalog, error) {
	if path == "" {
		return scoring.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := file.Criteria.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return file.Criteria, nil
}
