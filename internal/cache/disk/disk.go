// Package disk implements the on-disk snapshot store tier: one file per
// cache identity in the process working directory.
package disk

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/snapshot"
)

// Cache files live in the working directory. Not configurable for now.
const cacheDir = "."

// Ensure Store implements interfaces.SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)

// Store persists encoded snapshots as plain files. Writes go through a
// temporary file and a rename so concurrent readers never observe a partial
// file. Concurrent writers to the same identity still race; that hazard is
// documented, not handled.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New creates a disk store rooted at the working directory.
func New(logger *zap.Logger) *Store {
	return &Store{dir: cacheDir, logger: logger}
}

// Load reads and decodes the snapshot stored under identity.
func (s *Store) Load(identity string) ([]models.KeyValuePair, error) {
	path := filepath.Join(s.dir, identity)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: file %s absent", cache.ErrMiss, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", cache.ErrMiss, path, err)
	}

	pairs, err := snapshot.Decode(data)
	if err != nil {
		// A corrupt cache is a miss, not a fatal error: the snapshot is
		// always re-derivable from the network.
		return nil, fmt.Errorf("%w: decoding %s: %v", cache.ErrMiss, path, err)
	}

	s.logger.Info("loaded snapshot from disk cache",
		zap.String("path", path),
		zap.Int("pairs", len(pairs)))
	return pairs, nil
}

// Store writes the snapshot under identity, replacing any previous file.
func (s *Store) Store(identity string, pairs []models.KeyValuePair) error {
	path := filepath.Join(s.dir, identity)
	data := snapshot.Encode(pairs)

	tmp, err := os.CreateTemp(s.dir, identity+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for %s: %v", cache.ErrWrite, path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %v", cache.ErrWrite, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: closing %s: %v", cache.ErrWrite, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming %s to %s: %v", cache.ErrWrite, tmpPath, path, err)
	}

	s.logger.Info("wrote snapshot to disk cache",
		zap.String("path", path),
		zap.Int("pairs", len(pairs)),
		zap.Int("bytes", len(data)))
	return nil
}
