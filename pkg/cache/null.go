package cache

import (
	"context"
	"time"

	"github.com/matzehuels/jifkit/pkg/observability"
)

// NullCache stores nothing. Lookups still report a miss to
// [observability.Cache], so runs with caching disabled show up in metrics
// as misses rather than not at all.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

// Set discards data without reporting a write.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
