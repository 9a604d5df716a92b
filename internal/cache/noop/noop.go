// Package noop provides a snapshot store for disabled cache tiers.
package noop

import (
	"fmt"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
)

// Ensure Store implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store misses every load and drops every store.
type Store struct{}

// New creates a no-op store.
func New() *Store {
	return &Store{}
}

// Load always misses.
func (*Store) Load(identity string) ([]models.KeyValuePair, error) {
	return nil, fmt.Errorf("%w: caching disabled", cache.ErrMiss)
}

// Store does nothing.
func (*Store) Store(identity string, pairs []models.KeyValuePair) error {
	return nil
}
