// Package cache provides response caching for the analysis API.
//
// Analyses are pure functions of the request body, which makes the body
// bytes a perfect cache key: identical snapshot in, identical result out
// (modulo timestamps). The server hashes the raw request and stores the
// serialized response under that key.
//
// # Backends
//
//   - memory: process-local map, for single-instance deployments and tests
//   - redis: shared cache for multi-instance deployments
//   - null: caching disabled
//
// All backends implement [Cache] and treat expired or corrupt entries as
// misses, never as errors.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. A missing or expired key is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
