// Package builder assembles a scrape configuration and turns it into one
// delivered key-value snapshot.
package builder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache"
	"github.com/ToufeeqP/offline-election/internal/cache/disk"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/rpc"
	"github.com/ToufeeqP/offline-election/internal/scrape"
)

// DefaultURI is the endpoint used when none is configured.
const DefaultURI = "http://localhost:9933"

// unsetChain is the cache-naming placeholder when the chain name cannot be
// resolved. Resolution failure is non-fatal since the name only feeds cache
// naming, never data correctness.
const unsetChain = "UNSET"

// ErrAlreadyBuilt is returned when Build is invoked more than once.
var ErrAlreadyBuilt = errors.New("builder: already built")

type buildState int

const (
	stateConfigured buildState = iota
	stateBuilding
	stateBuilt
)

// Builder collects the scrape configuration through chained setters and is
// consumed by a single terminal Build call.
type Builder struct {
	uri       string
	at        *models.Hash
	modules   []string
	inject    []models.KeyValuePair
	mode      models.CacheMode
	cacheName string
	logger    *zap.Logger
	state     buildState

	// dial and store are swapped by Gateway/Store; defaults wire the real
	// HTTP client and the disk cache.
	dial  func(uri string, logger *zap.Logger) interfaces.Gateway
	store interfaces.SnapshotStore
}

// New creates a builder with defaults: finalized head, local node, no module
// filter, no caching.
func New() *Builder {
	return &Builder{
		uri:  DefaultURI,
		mode: models.CacheNone,
		dial: func(uri string, logger *zap.Logger) interfaces.Gateway {
			return rpc.Dial(uri, logger)
		},
	}
}

// At pins the scrape to the given block hash instead of the finalized head.
func (b *Builder) At(at models.Hash) *Builder {
	b.at = &at
	return b
}

// URI sets the node endpoint.
func (b *Builder) URI(uri string) *Builder {
	b.uri = uri
	return b
}

// Module restricts the scrape to the named module. Repeated calls accumulate;
// without any, the entire state is scraped.
func (b *Builder) Module(name string) *Builder {
	b.modules = append(b.modules, name)
	return b
}

// Inject appends manual key-value pairs to the snapshot. They are never
// module-filtered and always follow all fetched data.
func (b *Builder) Inject(pairs ...models.KeyValuePair) *Builder {
	b.inject = append(b.inject, pairs...)
	return b
}

// CacheMode configures cache behavior for the build.
func (b *Builder) CacheMode(mode models.CacheMode) *Builder {
	b.mode = mode
	return b
}

// CacheName overrides the automatic cache name with an explicit one.
func (b *Builder) CacheName(name string) *Builder {
	b.cacheName = name
	return b
}

// Logger sets the build logger. Defaults to a no-op logger.
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Gateway overrides the RPC gateway, bypassing the endpoint dial. Mainly for
// tests and custom transports.
func (b *Builder) Gateway(gw interfaces.Gateway) *Builder {
	b.dial = func(string, *zap.Logger) interfaces.Gateway { return gw }
	return b
}

// Store overrides the snapshot store used by the caching modes. Defaults to
// the on-disk store in the working directory.
func (b *Builder) Store(store interfaces.SnapshotStore) *Builder {
	b.store = store
	return b
}

// Build runs the full sequence: connect, resolve the target block and chain
// name, scrape or load from cache, then deliver every pair to sink in order.
// A builder is single-use; a second call returns ErrAlreadyBuilt.
func (b *Builder) Build(ctx context.Context, sink interfaces.StateSink) error {
	if b.state != stateConfigured {
		return ErrAlreadyBuilt
	}
	b.state = stateBuilding
	defer func() { b.state = stateBuilt }()

	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	if b.store == nil {
		b.store = disk.New(b.logger)
	}

	gw := b.dial(b.uri, b.logger)
	defer gw.Close()

	at, err := b.resolveAt(ctx, gw)
	if err != nil {
		return err
	}

	chain, err := gw.ChainName(ctx)
	if err != nil {
		b.logger.Warn("failed to resolve chain name, cache naming falls back to placeholder",
			zap.String("placeholder", unsetChain), zap.Error(err))
		chain = unsetChain
	}

	b.logger.Info("building snapshot",
		zap.String("uri", b.uri),
		zap.String("chain", chain),
		zap.Stringer("at", at),
		zap.Strings("modules", b.modules),
		zap.String("cache_mode", string(b.mode)))

	scraper := scrape.New(gw, b.logger)

	var pairs []models.KeyValuePair
	switch b.mode {
	case models.CacheNone:
		pairs, err = scraper.Scrape(ctx, at, b.modules, b.inject)
	case models.CacheForceUpdate:
		pairs, err = b.scrapeAndStore(ctx, scraper, at, chain)
	case models.CacheUseElseCreate:
		identity := b.identity(chain, at)
		cached, loadErr := b.store.Load(identity)
		if loadErr == nil {
			b.logger.Info("using cached snapshot",
				zap.String("identity", identity),
				zap.Int("pairs", len(cached)))
			pairs = cached
		} else {
			b.logger.Warn("cache miss, scraping remote", zap.Error(loadErr))
			pairs, err = b.scrapeAndStore(ctx, scraper, at, chain)
		}
	default:
		return fmt.Errorf("unknown cache mode %q", b.mode)
	}
	if err != nil {
		return err
	}

	b.logger.Info("delivering pairs to sink", zap.Int("count", len(pairs)))
	for _, p := range pairs {
		sink.Insert(p.Key, p.Value)
	}
	return nil
}

// resolveAt returns the caller-supplied hash or the remote finalized head.
func (b *Builder) resolveAt(ctx context.Context, gw interfaces.Gateway) (models.Hash, error) {
	if b.at != nil {
		return *b.at, nil
	}
	head, err := gw.FinalizedHead(ctx)
	if err != nil {
		return models.Hash{}, fmt.Errorf("resolving finalized head: %w", err)
	}
	return head, nil
}

// scrapeAndStore performs a live scrape and then persists it. A store failure
// is reported as a warning but never discards the freshly scraped snapshot.
func (b *Builder) scrapeAndStore(ctx context.Context, scraper *scrape.Scraper, at models.Hash, chain string) ([]models.KeyValuePair, error) {
	pairs, err := scraper.Scrape(ctx, at, b.modules, b.inject)
	if err != nil {
		return nil, err
	}

	identity := b.identity(chain, at)
	if err := b.store.Store(identity, pairs); err != nil {
		b.logger.Warn("failed to store snapshot cache, continuing with in-memory data",
			zap.String("identity", identity), zap.Error(err))
	}
	return pairs, nil
}

func (b *Builder) identity(chain string, at models.Hash) string {
	if b.cacheName != "" {
		return b.cacheName
	}
	return cache.Identity(chain, at, b.modules)
}
