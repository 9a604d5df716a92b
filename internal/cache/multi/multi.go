// Package multi composes snapshot store tiers into one store: loads try
// each tier in order, stores write every tier.
package multi

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/metrics"
	"github.com/ToufeeqP/offline-election/internal/models"
)

// Tier is one named snapshot store inside a Store.
type Tier struct {
	Name  string
	Store interfaces.SnapshotStore
}

// Ensure Store implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store tries tiers in order on Load and writes every tier on Store.
type Store struct {
	tiers  []Tier
	logger *zap.Logger
}

// New creates a composite store over the given tiers, fastest first.
func New(tiers []Tier, logger *zap.Logger) *Store {
	return &Store{tiers: tiers, logger: logger}
}

// Load returns the snapshot from the first tier holding it. Every per-tier
// miss is logged with its reason; only when all tiers miss does Load return
// a miss itself.
func (s *Store) Load(identity string) ([]models.KeyValuePair, error) {
	if len(s.tiers) == 0 {
		return nil, fmt.Errorf("%w: no cache tiers configured", cache.ErrMiss)
	}

	for _, tier := range s.tiers {
		pairs, err := tier.Store.Load(identity)
		if err == nil {
			metrics.RecordCacheHit(tier.Name)
			return pairs, nil
		}
		metrics.RecordCacheMiss(tier.Name)
		s.logger.Debug("cache tier miss",
			zap.String("tier", tier.Name),
			zap.String("identity", identity),
			zap.Error(err))
	}
	return nil, fmt.Errorf("%w: all %d tiers missed for %s", cache.ErrMiss, len(s.tiers), identity)
}

// Store writes the snapshot to every tier. All tiers are attempted even when
// one fails; the first failure is returned after the sweep so the caller can
// report it.
func (s *Store) Store(identity string, pairs []models.KeyValuePair) error {
	var firstErr error
	for _, tier := range s.tiers {
		if err := tier.Store.Store(identity, pairs); err != nil {
			metrics.RecordCacheWriteError(tier.Name)
			s.logger.Warn("cache tier store failed",
				zap.String("tier", tier.Name),
				zap.String("identity", identity),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil && !errors.Is(firstErr, cache.ErrWrite) {
		firstErr = fmt.Errorf("%w: %v", cache.ErrWrite, firstErr)
	}
	return firstErr
}
