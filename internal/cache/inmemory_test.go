package cache

import (
	"context"
	"testing"
	"time"

	"github.com/deespora/backoffice/internal/config"
	"github.com/stretchr/testify/assert"
)

func newCache(enabled bool) *InMemoryCache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	cfg.Cache.TTL = time.Minute
	return NewInMemoryCache(cfg)
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, GenerateKey(PrefixList, "all-events"), []string{"a"}, 0)
	c.Set(ctx, GenerateKey(PrefixList, "all-users"), []string{"b"}, 0)
	c.Set(ctx, GenerateKey(PrefixRecord, "all-users", "1"), "u1", 0)

	v, ok := c.Get(ctx, "list:v1:all-events")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	c.DeleteByPrefix(ctx, PrefixList)
	_, ok = c.Get(ctx, "list:v1:all-users")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "record:v1:all-users:1")
	assert.True(t, ok)

	c.Flush(ctx)
	_, ok = c.Get(ctx, "record:v1:all-users:1")
	assert.False(t, ok)
}

func TestInMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)
	c.Set(ctx, "k", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestDisabledCacheMisses(t *testing.T) {
	ctx := context.Background()
	c := newCache(false)
	c.Set(ctx, "k", 1, 0)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
