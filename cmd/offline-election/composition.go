package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/cache/disk"
	"github.com/ToufeeqP/offline-election/internal/cache/keydb"
	"github.com/ToufeeqP/offline-election/internal/cache/memory"
	"github.com/ToufeeqP/offline-election/internal/cache/multi"
	"github.com/ToufeeqP/offline-election/internal/cache/noop"
	"github.com/ToufeeqP/offline-election/internal/config"
	"github.com/ToufeeqP/offline-election/internal/interfaces"
)

// buildSnapshotStore wires the configured cache tiers, fastest first. The
// disk tier is always present; memory and KeyDB tiers are optional. A KeyDB
// connection failure degrades to the remaining tiers instead of failing the
// run.
func buildSnapshotStore(cfg *config.Config, logger *zap.Logger) (interfaces.SnapshotStore, func(), error) {
	var tiers []multi.Tier
	var closers []func()

	if cfg.MemoryCache.Enabled {
		mem, err := memory.New(cfg.MemoryCache.SizeMB, logger)
		if err != nil {
			return nil, nil, err
		}
		tiers = append(tiers, multi.Tier{Name: "memory", Store: mem})
		closers = append(closers, func() { _ = mem.Close() })
		logger.Info("memory cache tier enabled", zap.Int("size_mb", cfg.MemoryCache.SizeMB))
	} else {
		tiers = append(tiers, multi.Tier{Name: "memory", Store: noop.New()})
		logger.Info("memory cache tier disabled")
	}

	tiers = append(tiers, multi.Tier{Name: "disk", Store: disk.New(logger)})

	if cfg.KeyDBCache.Enabled {
		client, err := keydb.NewClient(&cfg.KeyDBCache.Config, logger)
		if err != nil {
			logger.Warn("failed to connect to KeyDB, continuing without shared cache tier", zap.Error(err))
		} else {
			kd := keydb.NewStore(&cfg.KeyDBCache.Config, client, logger)
			tiers = append(tiers, multi.Tier{Name: "keydb", Store: kd})
			closers = append(closers, func() { _ = kd.Close() })
		}
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	return multi.New(tiers, logger), closeAll, nil
}

// startMetricsServer exposes /metrics and /healthz on addr. An empty addr
// disables the server; the returned stop function is always safe to call.
func startMetricsServer(addr string, logger *zap.Logger) (func(), error) {
	if addr == "" {
		return func() {}, nil
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}, nil
}
