package cache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/jifkit/pkg/observability"
)

type countingHooks struct {
	mu                sync.Mutex
	hits, misses, set map[string]int
}

func newCountingHooks() *countingHooks {
	return &countingHooks{hits: map[string]int{}, misses: map[string]int{}, set: map[string]int{}}
}

func (h *countingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits[keyType]++
}

func (h *countingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses[keyType]++
}

func (h *countingHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set[keyType]++
}

func TestNullCache(t *testing.T) {
	hooks := newCountingHooks()
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always return a miss")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}

	_, _, _ = c.Get(ctx, "v1:result:abc")
	if hooks.misses["other"] != 2 || hooks.misses["result"] != 1 || len(hooks.set) != 0 {
		t.Errorf("hooks = misses %v set %v, want 2 other and 1 result miss, no sets", hooks.misses, hooks.set)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := ResultKeyOpts{Input: "3B 3 3\n3A 3 3", Format: "prechac"}
	rk := k.ResultKey(base)
	if !strings.HasPrefix(rk, "result:") {
		t.Errorf("ResultKey = %q, want result: prefix", rk)
	}
	if rk != k.ResultKey(base) {
		t.Error("ResultKey should be deterministic")
	}

	withManip := base
	withManip.Manipulators = []string{"- - sA"}
	if k.ResultKey(withManip) == rk {
		t.Error("Different manipulators should produce different keys")
	}
	withJugglers := base
	withJugglers.Jugglers = 3
	if k.ResultKey(withJugglers) == rk {
		t.Error("Different juggler counts should produce different keys")
	}

	if got := k.ResultKey(ResultKeyOpts{Input: "3B 3 3 \r\n3A 3 3\n", Format: "prechac"}); got != rk {
		t.Errorf("ResultKey with CRLF and trailing blanks = %q, want %q", got, rk)
	}
	withManip2 := withManip
	withManip2.Manipulators = []string{"- - sA  "}
	if k.ResultKey(withManip2) != k.ResultKey(withManip) {
		t.Error("Trailing whitespace in manipulators should not change the key")
	}
	reordered := base
	reordered.Manipulators = []string{"sA", "sB"}
	swapped := base
	swapped.Manipulators = []string{"sB", "sA"}
	if k.ResultKey(reordered) == k.ResultKey(swapped) {
		t.Error("Manipulator order should change the key")
	}

	if k.ArtifactKey(rk, "svg") == k.ArtifactKey(rk, "dot") {
		t.Error("Different artifact formats should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1:")
	key := scoped.ResultKey(ResultKeyOpts{Input: "975"})
	if !strings.HasPrefix(key, "v1:result:") {
		t.Errorf("ScopedKeyer ResultKey should be prefixed: %s", key)
	}
	if !strings.HasPrefix(scoped.ArtifactKey(key, "svg"), "v1:artifact:") {
		t.Error("ScopedKeyer ArtifactKey should be prefixed")
	}

	// A nil inner keyer falls back to DefaultKeyer.
	if got := NewScopedKeyer(nil, "p:").ResultKey(ResultKeyOpts{}); !strings.HasPrefix(got, "p:result:") {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"result:abc", "result"},
		{"v1.2.0:artifact:abc", "artifact"},
		{"plain", "other"},
		{":abc", "other"},
	}
	for _, tt := range tests {
		if got := keyType(tt.key); got != tt.want {
			t.Errorf("keyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	hooks := newCountingHooks()
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	c := NewMemoryCache(2)
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "result:a"); hit {
		t.Fatal("empty cache should miss")
	}
	_ = c.Set(ctx, "result:a", []byte("A"), 0)
	_ = c.Set(ctx, "result:b", []byte("B"), 0)

	// Touch a so that b is the least recently used entry.
	if data, hit, _ := c.Get(ctx, "result:a"); !hit || string(data) != "A" {
		t.Fatalf("Get(a) = %q, %v; want A, true", data, hit)
	}
	_ = c.Set(ctx, "result:c", []byte("C"), 0)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "result:b"); hit {
		t.Error("b should have been evicted")
	}
	if _, hit, _ := c.Get(ctx, "result:c"); !hit {
		t.Error("c should be present")
	}

	if hooks.hits["result"] != 2 || hooks.misses["result"] != 2 || hooks.set["result"] != 3 {
		t.Errorf("hooks = hits %v misses %v set %v", hooks.hits, hooks.misses, hooks.set)
	}

	if err := c.Delete(ctx, "result:c"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "result:c"); hit {
		t.Error("c should be deleted")
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "result:x", []byte("x"), time.Minute)
	if _, hit, _ := c.Get(ctx, "result:x"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "result:x"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed, Len() = %d", c.Len())
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "result:a"); hit || err != nil {
		t.Fatalf("Get on empty cache = %v, %v; want miss", hit, err)
	}
	if err := c.Set(ctx, "result:a", []byte(`{"ok":true}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "result:a")
	if err != nil || !hit || string(data) != `{"ok":true}` {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "result:old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "result:old"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Delete(ctx, "result:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(ctx, "result:a"); err != nil {
		t.Errorf("Delete of missing entry: %v", err)
	}

	_ = c.Set(ctx, "result:b", []byte("b"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "result:b"); hit {
		t.Error("Clear should remove entries")
	}
}
