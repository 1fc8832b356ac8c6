package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipegenie/backend/config"
	httpDelivery "github.com/recipegenie/backend/internal/delivery/http"
	"github.com/recipegenie/backend/internal/domain"
	"github.com/recipegenie/backend/internal/infrastructure/cache"
	"github.com/recipegenie/backend/internal/infrastructure/logger"
	"github.com/recipegenie/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting RecipeGenie AI Service v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type))

	// Initialize the cache backend; a failed Redis connection degrades to
	// no caching instead of refusing to start.
	cacheRepo := buildCache(cfg, zapLogger)

	// Initialize usecase layer
	service := usecase.NewRecommendService(
		usecase.DefaultVocabulary(),
		cacheRepo,
		nil,
		usecase.Config{
			Weights: usecase.ScoreWeights{
				IngredientMatch: cfg.Scoring.IngredientMatchWeight,
				UserPreference:  cfg.Scoring.UserPreferenceWeight,
				Popularity:      cfg.Scoring.PopularityWeight,
				Complexity:      cfg.Scoring.ComplexityWeight,
			},
			CacheTTL: cfg.Cache.TTL,
		},
		zapLogger,
	)

	// Create HTTP handler and router
	handler := httpDelivery.NewHandler(service, zapLogger)
	router := httpDelivery.SetupRouter(cfg, handler, zapLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}

// buildCache returns the configured cache backend, or nil when caching is
// disabled or unreachable.
func buildCache(cfg *config.Config, zapLogger *zap.Logger) domain.CacheRepository {
	if !cfg.Cache.Enabled {
		zapLogger.Info("Caching disabled")
		return nil
	}

	if cfg.Cache.Type == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			zapLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
			return nil
		}
		zapLogger.Info("Connected to Redis cache")
		return redisCache
	}

	zapLogger.Info("Using in-memory cache", zap.Duration("ttl", cfg.Cache.TTL))
	return cache.NewMemoryCache()
}
