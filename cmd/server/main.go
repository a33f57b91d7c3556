package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sparecarry/itemspec/config"
	httpDelivery "github.com/sparecarry/itemspec/internal/delivery/http"
	"github.com/sparecarry/itemspec/internal/domain"
	"github.com/sparecarry/itemspec/internal/infrastructure/cache"
	"github.com/sparecarry/itemspec/internal/observability"
	"github.com/sparecarry/itemspec/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "itemspec",
	})

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Dur("cache_ttl", cfg.Cache.TTL).
		Int("rate_limit_per_ip", cfg.RateLimit.PerIP).
		Msg("Starting item spec service v1.0.0")

	// Initialize infrastructure dependencies
	itemCache, cacheCloser, err := newCache(cfg.Cache)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize cache")
	}
	defer cacheCloser.Close()

	// Initialize usecase layer
	itemSpecService := usecase.NewItemSpecService(
		usecase.NewInferenceEngine(),
		itemCache,
		logger,
		usecase.ItemSpecServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	handler := httpDelivery.NewHandler(itemSpecService)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		_ = srv.Close()
	}
	logger.Info().Msg("Server stopped")
}

// newCache builds the configured cache backend and returns it with its closer
func newCache(cfg config.CacheConfig) (domain.CacheRepository, io.Closer, error) {
	switch cfg.Type {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL, "")
		if err != nil {
			return nil, nil, err
		}
		return redisCache, redisCache, nil
	default:
		memoryCache := cache.NewMemoryCache(0)
		return memoryCache, memoryCache, nil
	}
}
