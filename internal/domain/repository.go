package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SimilarityProvider is an optional extension point for a learned
// text-similarity model. The rule-based scorer never requires one; when
// injected, implementations may refine the ingredient-match signal.
// (Future use: a trained vectorizer service behind this interface.)
type SimilarityProvider interface {
	Similarity(ctx context.Context, a, b []string) (float64, error)
}
