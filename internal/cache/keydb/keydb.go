// Package keydb implements a shared snapshot store tier backed by
// Redis/KeyDB, so cache entries can be reused across machines.
package keydb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/snapshot"
)

// Config holds the KeyDB tier settings.
type Config struct {
	URL            string        `yaml:"url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	SendTimeout    time.Duration `yaml:"send_timeout"`
}

// ApplyDefaults fills in zero-valued settings.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 30 * time.Second
	}
	if c.SendTimeout == 0 {
		c.SendTimeout = 30 * time.Second
	}
}

// Ensure Store implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store keeps encoded snapshots in KeyDB. Entries never expire: a snapshot
// is immutable for its identity.
type Store struct {
	client interfaces.RedisClient
	config *Config
	logger *zap.Logger
}

// NewStore creates a KeyDB-backed store with the provided client.
func NewStore(cfg *Config, client interfaces.RedisClient, logger *zap.Logger) *Store {
	return &Store{client: client, config: cfg, logger: logger}
}

// NewClient connects to the KeyDB endpoint named by cfg.URL and verifies the
// connection with a ping.
func NewClient(cfg *Config, logger *zap.Logger) (interfaces.RedisClient, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse KeyDB URL: %w", err)
	}
	opts.DialTimeout = cfg.ConnectTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.SendTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to KeyDB at %s: %w", opts.Addr, err)
	}

	logger.Info("connected to KeyDB", zap.String("address", opts.Addr))
	return client, nil
}

// Load returns the snapshot stored in KeyDB under identity.
func (s *Store) Load(identity string) ([]models.KeyValuePair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ReadTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, identity).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: entry %s absent", cache.ErrMiss, identity)
		}
		return nil, fmt.Errorf("%w: reading entry %s: %v", cache.ErrMiss, identity, err)
	}

	pairs, err := snapshot.Decode([]byte(data))
	if err != nil {
		s.logger.Warn("dropping corrupt KeyDB snapshot",
			zap.String("identity", identity), zap.Error(err))
		s.client.Del(context.Background(), identity)
		return nil, fmt.Errorf("%w: decoding entry %s: %v", cache.ErrMiss, identity, err)
	}
	return pairs, nil
}

// Store writes the snapshot to KeyDB under identity with no expiration.
func (s *Store) Store(identity string, pairs []models.KeyValuePair) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.SendTimeout)
	defer cancel()

	if err := s.client.Set(ctx, identity, snapshot.Encode(pairs), 0).Err(); err != nil {
		return fmt.Errorf("%w: storing entry %s: %v", cache.ErrWrite, identity, err)
	}
	return nil
}

// Close closes the KeyDB connection.
func (s *Store) Close() error {
	return s.client.Close()
}
