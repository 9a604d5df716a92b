// Package config holds the CLI front-end configuration. The scraping core
// itself is configured through the builder; this file covers the outer
// surface: cache tiers, metrics endpoint and network display settings.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ToufeeqP/offline-election/internal/cache/keydb"
)

// MemoryCacheConfig configures the in-process snapshot cache tier.
type MemoryCacheConfig struct {
	Enabled bool `yaml:"enabled"`
	SizeMB  int  `yaml:"size_mb"`
}

// KeyDBCacheConfig configures the shared snapshot cache tier.
type KeyDBCacheConfig struct {
	Enabled bool `yaml:"enabled"`
	keydb.Config `yaml:",inline"`
}

// Config is the root CLI configuration.
type Config struct {
	URI         string            `yaml:"uri"`
	Network     string            `yaml:"network"`
	MetricsAddr string            `yaml:"metrics_addr"`
	MemoryCache MemoryCacheConfig `yaml:"memory_cache"`
	KeyDBCache  KeyDBCacheConfig  `yaml:"keydb_cache"`
}

// Load reads the YAML configuration from path.
func Load(path string, logger *zap.Logger) (*Config, error) {
	logger.Info("loading configuration", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in zero-valued settings.
func (c *Config) ApplyDefaults() {
	if c.Network == "" {
		c.Network = "kusama"
	}
	if c.URI == "" {
		c.URI = "http://localhost:9933"
	}
	if c.MemoryCache.SizeMB == 0 {
		c.MemoryCache.SizeMB = 256
	}
	c.KeyDBCache.ApplyDefaults()
}
