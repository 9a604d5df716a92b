package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/builder"
	"github.com/ToufeeqP/offline-election/internal/config"
	"github.com/ToufeeqP/offline-election/internal/models"
	"github.com/ToufeeqP/offline-election/internal/twox"
)

type scrapeOptions struct {
	uri       string
	at        string
	network   string
	modules   []string
	inject    []string
	cacheMode string
	cacheName string
}

func newScrapeCmd(root *rootOptions) *cobra.Command {
	opts := &scrapeOptions{}

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Download a key-value snapshot of remote chain state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.uri, "uri", "", "node RPC endpoint (default "+builder.DefaultURI+")")
	cmd.Flags().StringVar(&opts.at, "at", "", "block hash to scrape at (default: finalized head)")
	cmd.Flags().StringVar(&opts.network, "network", "", "network preset: kusama, polkadot or substrate")
	cmd.Flags().StringArrayVar(&opts.modules, "module", nil, "scrape only this module (repeatable)")
	cmd.Flags().StringArrayVar(&opts.inject, "inject", nil, "manual key-value pair as 0xKEY=0xVALUE (repeatable)")
	cmd.Flags().StringVar(&opts.cacheMode, "cache-mode", string(models.CacheNone), "cache mode: none, use-else-create or force-update")
	cmd.Flags().StringVar(&opts.cacheName, "cache-name", "", "explicit cache file name (default: automatic)")

	return cmd
}

func runScrape(cmd *cobra.Command, root *rootOptions, opts *scrapeOptions) error {
	logger, err := newLogger(root.verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(root, logger)
	if err != nil {
		return err
	}
	if opts.uri != "" {
		cfg.URI = opts.uri
	}
	if opts.network != "" {
		cfg.Network = opts.network
	}

	network, err := config.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}

	mode, err := models.ParseCacheMode(opts.cacheMode)
	if err != nil {
		return err
	}

	inject, err := parseInjectPairs(opts.inject)
	if err != nil {
		return err
	}

	stopMetrics, err := startMetricsServer(cfg.MetricsAddr, logger)
	if err != nil {
		return err
	}
	defer stopMetrics()

	store, closeStore, err := buildSnapshotStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	b := builder.New().
		URI(cfg.URI).
		CacheMode(mode).
		Logger(logger).
		Store(store).
		Inject(inject...)
	if opts.cacheName != "" {
		b.CacheName(opts.cacheName)
	}
	for _, m := range opts.modules {
		b.Module(m)
	}
	if opts.at != "" {
		at, err := models.ParseHash(opts.at)
		if err != nil {
			return err
		}
		b.At(at)
	}

	logger.Info("scraping",
		zap.String("uri", cfg.URI),
		zap.String("network", network.Name),
		zap.String("token", network.Token))

	sink := newMapSink()
	if err := b.Build(cmd.Context(), sink); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info("scrape finished",
		zap.Int("inserted", sink.inserted),
		zap.Int("unique_keys", len(sink.state)),
		zap.Int("bytes", sink.bytes))

	if raw, ok := sink.state[string(totalIssuanceKey())]; ok {
		logger.Info("total issuance",
			zap.String("amount", network.FormatAmount(decodeBalance(raw))))
	}
	return nil
}

// totalIssuanceKey is the storage key of the Balances module's TotalIssuance
// item: twox128("Balances") followed by twox128("TotalIssuance").
func totalIssuanceKey() []byte {
	return append(twox.ModulePrefix("Balances"), twox.ModulePrefix("TotalIssuance")...)
}

// decodeBalance interprets a raw storage value as a little-endian unsigned
// balance.
func decodeBalance(raw []byte) *big.Int {
	buf := make([]byte, len(raw))
	for i, b := range raw {
		buf[len(raw)-1-i] = b
	}
	return new(big.Int).SetBytes(buf)
}

// parseInjectPairs parses repeated 0xKEY=0xVALUE flags.
func parseInjectPairs(raw []string) ([]models.KeyValuePair, error) {
	pairs := make([]models.KeyValuePair, 0, len(raw))
	for _, entry := range raw {
		k, v, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("invalid inject entry %q: expected 0xKEY=0xVALUE", entry)
		}
		key, err := models.ParseHexBytes(k)
		if err != nil {
			return nil, fmt.Errorf("invalid inject key %q: %w", k, err)
		}
		value, err := models.ParseHexBytes(v)
		if err != nil {
			return nil, fmt.Errorf("invalid inject value %q: %w", v, err)
		}
		pairs = append(pairs, models.KeyValuePair{Key: key, Value: value})
	}
	return pairs, nil
}

// mapSink is the in-memory state sink: last write wins on duplicate keys.
type mapSink struct {
	state    map[string][]byte
	inserted int
	bytes    int
}

func newMapSink() *mapSink {
	return &mapSink{state: make(map[string][]byte)}
}

func (m *mapSink) Insert(key, value []byte) {
	m.state[string(key)] = value
	m.inserted++
	m.bytes += len(key) + len(value)
}
