// Package cache stores analysis results and rendered artifacts.
//
// # Cache Interface
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry TTL:
//   - [MemoryCache]: bounded in-process store used by the HTTP server
//   - [FileCache]: on-disk store used by the CLI between invocations
//   - [NullCache]: stores nothing, for tests or when caching is disabled
//
// # Keys
//
// Keys are built by a [Keyer] so that every option affecting the output is
// part of the key. [ScopedKeyer] prefixes keys for isolated namespaces.
//
// Every backend reports hits, misses and writes through
// [observability.Cache], labeled by key type ("result", "artifact", ...).
package cache

import (
	"context"
	"strings"
	"time"
)

// Default TTLs per key type.
const (
	TTLResult   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a key/value store for serialized results.
type Cache interface {
	// Get returns the stored bytes and whether the key was present and
	// unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// keyType extracts the key type from a key built by a [Keyer]: the segment
// just before the final hash, ignoring any scope prefix.
func keyType(key string) string {
	i := strings.LastIndex(key, ":")
	if i < 0 {
		return "other"
	}
	head := key[:i]
	if j := strings.LastIndex(head, ":"); j >= 0 {
		head = head[j+1:]
	}
	if head == "" {
		return "other"
	}
	return head
}
