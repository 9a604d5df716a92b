// Package scrape turns a resolved block hash into a full key-value snapshot
// by issuing bulk pair fetches against the remote node.
package scrape

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ToufeeqP/offline-election/internal/interfaces"
	"github.com/ToufeeqP/offline-election/internal/metrics"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/twox"
)

// fetchConcurrency bounds parallel per-module fetches. Each fetch is an
// expensive bulk read on the node side.
const fetchConcurrency = 4

// Scraper produces a key-value snapshot for one block hash.
type Scraper struct {
	gateway interfaces.Gateway
	logger  *zap.Logger
}

// New creates a scraper over the given gateway.
func New(gateway interfaces.Gateway, logger *zap.Logger) *Scraper {
	return &Scraper{gateway: gateway, logger: logger}
}

// Scrape fetches all pairs selected by modules at the given block and appends
// inject after them. An empty filter fetches the whole state. Per-module
// fetches run concurrently but results are concatenated in declaration order,
// so the output is deterministic regardless of completion order. Any fetch
// failure aborts the scrape; no partial snapshot is ever returned.
func (s *Scraper) Scrape(ctx context.Context, at models.Hash, modules []string, inject []models.KeyValuePair) ([]models.KeyValuePair, error) {
	var pairs []models.KeyValuePair

	if len(modules) == 0 {
		s.logger.Info("downloading data for all modules", zap.Stringer("at", at))

		all, err := s.fetch(ctx, "", nil, at)
		if err != nil {
			return nil, err
		}
		pairs = all
	} else {
		results := make([][]models.KeyValuePair, len(modules))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fetchConcurrency)
		for i, module := range modules {
			i, module := i, module
			g.Go(func() error {
				prefix := twox.ModulePrefix(module)
				got, err := s.fetch(gctx, module, prefix, at)
				if err != nil {
					return err
				}
				results[i] = got
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, got := range results {
			pairs = append(pairs, got...)
		}
	}

	// Injected pairs are never filtered and always come last.
	pairs = append(pairs, inject...)

	s.logger.Info("scrape complete",
		zap.Stringer("at", at),
		zap.Int("fetched", len(pairs)-len(inject)),
		zap.Int("injected", len(inject)))
	return pairs, nil
}

func (s *Scraper) fetch(ctx context.Context, module string, prefix models.StorageKey, at models.Hash) ([]models.KeyValuePair, error) {
	done := metrics.TimeFetch(module)
	defer done()

	got, err := s.gateway.StoragePairs(ctx, prefix, at)
	if err != nil {
		return nil, err
	}
	metrics.RecordFetch(module, len(got))

	if module != "" {
		s.logger.Info("downloaded data for module",
			zap.String("module", module),
			zap.String("prefix", models.HexStr(prefix)),
			zap.Int("count", len(got)))
	}
	return got, nil
}
