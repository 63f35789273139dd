// Package main is the entry point for the currency rate service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"currencyservice/internal/config"
	"currencyservice/internal/metrics"
	"currencyservice/internal/provider"
	"currencyservice/internal/ratecache"
	"currencyservice/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	rdbCache   *redis.Client
	promReg    *prometheus.Registry
	metrics    *metrics.Metrics
	registry   *ratecache.Registry
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initStorage(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// close releases the Redis connection
func (app *App) close() error {
	var errs []error
	if app.rdbCache != nil {
		if err := app.rdbCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis cache close: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (app *App) initStorage() error {
	if app.cfg.Redis.CacheAddr == "" {
		app.logger.Infow("Redis fetch cache disabled")
		return nil
	}

	app.rdbCache = redis.NewClient(&redis.Options{
		Addr: app.cfg.Redis.CacheAddr,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.rdbCache.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to Redis (cache, %s): %w", app.cfg.Redis.CacheAddr, err)
	}
	app.logger.Infow("Connected to Redis cache", "addr", app.cfg.Redis.CacheAddr)

	return nil
}

func (app *App) initServices() error {
	app.promReg = prometheus.NewRegistry()
	app.promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.NewMetrics(app.promReg)

	pairs, err := app.cfg.LoadPairs()
	if err != nil {
		return fmt.Errorf("load currency pairs: %w", err)
	}

	registry, err := ratecache.NewRegistry(
		pairs,
		newRateProvider(app.cfg, app.rdbCache),
		ratecache.WithRefreshInterval(app.cfg.RefreshInterval()),
		ratecache.WithFetchTimeout(app.cfg.FetchTimeout()),
		ratecache.WithObserver(app.metrics),
		ratecache.WithLogger(app.logger),
	)
	if err != nil {
		return fmt.Errorf("build pair registry: %w", err)
	}
	app.registry = registry
	app.logger.Infow("Pair registry built", "pairs", registry.Len())

	currencyService := service.NewCurrencyService(registry, app.logger)

	app.initHTTP(currencyService)
	return nil
}

func newRateProvider(cfg *config.Config, cache *redis.Client) provider.RatesProvider {
	p := provider.NewExchangeRatesAPIProvider(cfg.Fetcher.BaseURL, cfg.Fetcher.APIKey, cfg.Fetcher.TimeoutSec)
	if cache == nil {
		return p
	}
	return provider.NewCachedRatesProvider(p, cache, cfg.FetchCacheTTL(), "exchangeratesapi")
}

// Run starts the refresh loops and the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.registry.Run(ctx)
	})

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or component failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests first so no handler reads from a
// registry whose loops are being torn down, then closes connections.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
