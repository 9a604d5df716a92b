// Package memory implements an in-process snapshot store tier backed by
// BigCache, so repeated builds inside one process skip the disk entirely.
package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/snapshot"
)

// Ensure Store implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store holds encoded snapshots in memory. Entries are evicted by size
// pressure only; snapshots are immutable per identity so staleness is not a
// concern.
type Store struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// New creates an in-memory store capped at sizeMB megabytes.
func New(sizeMB int, logger *zap.Logger) (*Store, error) {
	config := bigcache.DefaultConfig(24 * time.Hour)
	config.HardMaxCacheSize = sizeMB
	config.Verbose = false
	// A handful of large entries, not many small ones. Few shards keep the
	// per-shard cap at sizeMB/4 so one shard can hold a whole encoded
	// snapshot; initial allocation stays in the kilobytes since MaxEntrySize
	// only sizes the initial queue. A snapshot exceeding the shard cap fails
	// the write and falls through to the next tier.
	config.Shards = 4
	config.MaxEntriesInWindow = 64

	bc, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &Store{cache: bc, logger: logger}, nil
}

// Load returns the snapshot cached in memory under identity.
func (s *Store) Load(identity string) ([]models.KeyValuePair, error) {
	data, err := s.cache.Get(identity)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, fmt.Errorf("%w: entry %s absent", cache.ErrMiss, identity)
		}
		return nil, fmt.Errorf("%w: reading entry %s: %v", cache.ErrMiss, identity, err)
	}

	pairs, err := snapshot.Decode(data)
	if err != nil {
		s.logger.Warn("dropping corrupt in-memory snapshot",
			zap.String("identity", identity), zap.Error(err))
		_ = s.cache.Delete(identity)
		return nil, fmt.Errorf("%w: decoding entry %s: %v", cache.ErrMiss, identity, err)
	}
	return pairs, nil
}

// Store caches the snapshot in memory under identity.
func (s *Store) Store(identity string, pairs []models.KeyValuePair) error {
	if err := s.cache.Set(identity, snapshot.Encode(pairs)); err != nil {
		return fmt.Errorf("%w: caching entry %s: %v", cache.ErrWrite, identity, err)
	}
	return nil
}

// Close releases the cache.
func (s *Store) Close() error {
	return s.cache.Close()
}
