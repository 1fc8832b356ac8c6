package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a required top-level request field
	// is missing (the only error class surfaced to callers)
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
