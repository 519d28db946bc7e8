package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulzo/provider-gateway/internal/analytics"
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/config"
	"github.com/nulzo/provider-gateway/internal/gateway"
	"github.com/nulzo/provider-gateway/internal/platform/logger"
	"github.com/nulzo/provider-gateway/internal/platform/otel"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/nulzo/provider-gateway/internal/server"
	"github.com/nulzo/provider-gateway/internal/store"
	"github.com/nulzo/provider-gateway/internal/store/cache"
	"github.com/nulzo/provider-gateway/internal/store/cache/memory"
	"github.com/nulzo/provider-gateway/internal/store/cache/redis"
	"github.com/nulzo/provider-gateway/internal/store/sqlite"
	"go.uber.org/zap"

	// Import adapters to trigger init() registration
	_ "github.com/nulzo/provider-gateway/internal/provider/anthropic"
	_ "github.com/nulzo/provider-gateway/internal/provider/google"
	_ "github.com/nulzo/provider-gateway/internal/provider/openai"
)

func main() {
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	log := logger.Get()

	CheckForUpdates()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := catalog.Validate(); err != nil {
		log.Fatal("Model catalog is inconsistent", zap.Error(err))
	}

	shutdownTracer, err := otel.InitTracer("provider-gateway", log, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	adapters := buildAdapters(cfg, log)

	var repo store.Repository
	var ingestor analytics.Ingestor
	if cfg.Store.Enabled {
		repo, err = sqlite.NewSQLiteStorage(cfg.Store.DSN)
		if err != nil {
			log.Fatal("Failed to open usage store", zap.Error(err))
		}
		ingestor = analytics.NewIngestor(log, repo)
		ingestor.Start(context.Background())
	}

	var cacheSvc cache.CacheService
	if cfg.Redis.Enabled {
		cacheSvc, err = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
			cacheSvc = memory.NewMemoryCache()
		}
	} else {
		cacheSvc = memory.NewMemoryCache()
	}

	service := gateway.NewService(log, adapters, ingestor)
	srv := server.New(cfg, log, service, repo, cacheSvc)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		log.Info("Starting provider gateway",
			zap.String("port", cfg.Server.Port),
			zap.String("env", cfg.Server.Env),
			zap.Int("models", len(catalog.All())),
			zap.Int("providers", len(adapters)))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}

	if ingestor != nil {
		ingestor.Stop()
	}
	if repo != nil {
		_ = repo.Close()
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error("Tracer shutdown failed", zap.Error(err))
	}
}

// buildAdapters instantiates one adapter per enabled provider. A provider
// with a missing key is fatal at startup rather than at first request.
func buildAdapters(cfg *config.Config, log *zap.Logger) map[catalog.Provider]provider.Adapter {
	adapters := make(map[catalog.Provider]provider.Adapter)

	for _, pCfg := range cfg.Providers {
		name := catalog.Provider(pCfg.Provider)

		if !pCfg.Enabled {
			log.Warn("Provider disabled by configuration", zap.String("provider", pCfg.Provider))
			continue
		}

		factory, err := provider.Get(name)
		if err != nil {
			log.Fatal("No adapter registered for configured provider",
				zap.String("provider", pCfg.Provider))
		}

		adapter, err := factory(provider.Config{APIKey: pCfg.APIKey})
		if err != nil {
			log.Fatal("Failed to initialize provider adapter",
				zap.String("provider", pCfg.Provider),
				zap.Error(err))
		}

		adapters[name] = adapter
		log.Info("Registered provider adapter", zap.String("provider", pCfg.Provider))
	}

	// Catalog entries whose provider has no adapter will fail at dispatch
	// time; surface that now so operators see it in the startup log.
	for _, def := range catalog.All() {
		if _, ok := adapters[def.Provider]; !ok {
			log.Warn("Catalog model has no active provider",
				zap.String("model", def.ID),
				zap.String("provider", string(def.Provider)))
		}
	}

	return adapters
}
