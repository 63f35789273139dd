package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "currencyservice/internal/api/docs"
	"currencyservice/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	sugar := zapLogger.Sugar()

	sugar.Infow("Starting currency rate service", startupFields(cfg)...)

	app, err := NewApp(cfg, sugar)
	if err != nil {
		sugar.Fatalw("Failed to initialize app", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		sugar.Fatalw("Application error", "error", err)
	}
	sugar.Infow("Currency rate service stopped")
}

func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// startupFields summarizes where pairs come from and how they are refreshed.
// The API key is never logged.
func startupFields(cfg *config.Config) []any {
	fetchCache := "disabled"
	if cfg.Redis.CacheAddr != "" {
		fetchCache = cfg.Redis.CacheAddr
	}
	return []any{
		"port", cfg.Server.Port,
		"pairs_file", cfg.Pairs.File,
		"inline_pairs", len(cfg.Pairs.List),
		"refresh_interval", cfg.RefreshInterval().String(),
		"fetcher_url", cfg.Fetcher.BaseURL,
		"fetch_timeout", cfg.FetchTimeout().String(),
		"fetch_cache", fetchCache,
	}
}
