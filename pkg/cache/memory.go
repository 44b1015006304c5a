package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/matzehuels/jifkit/pkg/observability"
)

// DefaultMaxEntries bounds a [MemoryCache] created with a non-positive size.
const DefaultMaxEntries = 1024

// MemoryCache is a bounded in-process cache. When full, the least recently
// used entry is evicted. It is safe for concurrent use.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	order      *list.List // front is most recently used
	entries    map[string]*list.Element
	now        func() time.Time
}

type memoryEntry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates a memory cache holding at most maxEntries entries.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	el, ok := c.entries[key]
	if ok {
		e := el.Value.(*memoryEntry)
		if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
			c.removeLocked(el)
			ok = false
		} else {
			c.order.MoveToFront(el)
			data := e.data
			c.mu.Unlock()
			observability.Cache().OnCacheHit(ctx, keyType(key))
			return data, true, nil
		}
	}
	c.mu.Unlock()
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := &memoryEntry{key: key, data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		el.Value = e
		c.order.MoveToFront(el)
	} else {
		c.entries[key] = c.order.PushFront(e)
		for c.order.Len() > c.maxEntries {
			c.removeLocked(c.order.Back())
		}
	}
	c.mu.Unlock()

	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)
	return nil
}

func (c *MemoryCache) removeLocked(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*memoryEntry).key)
}

var _ Cache = (*MemoryCache)(nil)
