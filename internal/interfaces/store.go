package interfaces

import "github.com/ToufeeqP/offline-election/internal/models"

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// SnapshotStore persists scraped snapshots under a deterministic identity.
type SnapshotStore interface {
	// Load returns the snapshot stored under identity. A missing, unreadable
	// or undecodable entry returns an error wrapping cache.ErrMiss.
	Load(identity string) ([]models.KeyValuePair, error)
	// Store persists the snapshot under identity, overwriting any previous
	// entry. A failure wraps cache.ErrWrite.
	Store(identity string, pairs []models.KeyValuePair) error
}
