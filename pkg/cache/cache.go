// Package cache provides pluggable byte caches for rendered diagram
// artifacts.
//
// Rendering markup to SVG is the slowest operation in the toolchain,
// whether it runs through the embedded graphviz engine or a remote
// rendering service. Because serialization is deterministic, the markup
// text itself is a perfect cache key: identical diagrams always produce
// identical artifacts.
//
// Three backends are provided:
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are built with [ArtifactKey], which hashes the markup so arbitrary
// diagram text maps to safe, bounded key names.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with per-entry TTL.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The boolean reports a hit; expired or absent
	// entries are a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value, replacing any existing entry for key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
