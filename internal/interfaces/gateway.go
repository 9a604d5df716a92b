package interfaces

import (
	"context"

	"github.com/ToufeeqP/offline-election/internal/models"
)

//go:generate mockgen -package=mock -source=gateway.go -destination=mock/gateway.go

// Gateway is the remote node capability used by the scraper and builder.
// Every call is independently fallible and honours context cancellation.
type Gateway interface {
	// FinalizedHead returns the hash of the latest finalized block.
	FinalizedHead(ctx context.Context) (models.Hash, error)
	// ChainName returns the display name of the chain. Used only for cache
	// naming, never for data correctness.
	ChainName(ctx context.Context) (string, error)
	// StoragePairs returns all (key, value) pairs whose key starts with
	// prefix, at the given block. An empty prefix matches all keys.
	StoragePairs(ctx context.Context, prefix models.StorageKey, at models.Hash) ([]models.KeyValuePair, error)
	// Close releases the underlying connection.
	Close()
}
