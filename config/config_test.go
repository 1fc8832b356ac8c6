package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("RECIPEGENIE_SERVER_PORT")
		os.Unsetenv("RECIPEGENIE_SERVER_ENVIRONMENT")
		os.Unsetenv("RECIPEGENIE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("RECIPEGENIE_CACHE_ENABLED")
		os.Unsetenv("RECIPEGENIE_CACHE_TYPE")
		os.Unsetenv("RECIPEGENIE_CACHE_REDIS_URL")
		os.Unsetenv("RECIPEGENIE_CACHE_TTL")
		os.Unsetenv("RECIPEGENIE_RATELIMIT_PER_IP")
		os.Unsetenv("RECIPEGENIE_SCORING_INGREDIENT_MATCH_WEIGHT")
		os.Unsetenv("RECIPEGENIE_LOG_LEVEL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if !cfg.Cache.Enabled {
			t.Error("Cache.Enabled = false, want true")
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Scoring.IngredientMatchWeight != 0.4 {
			t.Errorf("Scoring.IngredientMatchWeight = %v, want 0.4", cfg.Scoring.IngredientMatchWeight)
		}
		if cfg.Scoring.ComplexityWeight != 0.1 {
			t.Errorf("Scoring.ComplexityWeight = %v, want 0.1", cfg.Scoring.ComplexityWeight)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RECIPEGENIE_SERVER_PORT", "9090")
		os.Setenv("RECIPEGENIE_SERVER_ENVIRONMENT", "production")
		os.Setenv("RECIPEGENIE_CACHE_TYPE", "redis")
		os.Setenv("RECIPEGENIE_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("RECIPEGENIE_CACHE_TTL", "24h")
		os.Setenv("RECIPEGENIE_RATELIMIT_PER_IP", "200")
		os.Setenv("RECIPEGENIE_LOG_LEVEL", "debug")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
	})

	t.Run("rejects invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RECIPEGENIE_CACHE_TYPE", "memcached")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid cache type error")
		}
	})

	t.Run("rejects redis cache without url", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RECIPEGENIE_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want missing redis url error")
		}
	})

	t.Run("rejects out of range weight", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("RECIPEGENIE_SCORING_INGREDIENT_MATCH_WEIGHT", "1.5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want weight range error")
		}
	})
}
