package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparecarry/itemspec/internal/domain"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), "redis://"+srv.Addr(), "test:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c, srv
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not a url", "")
	assert.Error(t, err)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewRedisCache(context.Background(), "redis://"+addr, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	c, srv := newTestRedisCache(t)
	ctx := context.Background()

	spec := &domain.ItemSpecification{
		PhysicalSpec: domain.PhysicalSpec{
			Weight:     20,
			Dimensions: domain.Dimensions{Length: 75, Width: 50, Height: 50},
			Category:   "marine",
		},
		Source: "Battery 200Ah (estimated)",
	}

	require.NoError(t, c.Set(ctx, "battery", spec, time.Hour))
	assert.True(t, srv.Exists("test:battery"), "key should carry the prefix")

	got, err := c.Get(ctx, "battery")
	require.NoError(t, err)

	m, ok := got.(map[string]interface{})
	require.True(t, ok, "Get() type = %T", got)
	assert.Equal(t, "Battery 200Ah (estimated)", m["source"])
	assert.Equal(t, 20.0, m["weight"])
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestRedisCache(t)

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_TTL(t *testing.T) {
	c, srv := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "x", time.Minute))
	srv.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_ExistsAndDelete(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "k"))
	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisCache_CorruptValue(t *testing.T) {
	c, srv := newTestRedisCache(t)
	require.NoError(t, srv.Set("test:bad", "{not json"))

	_, err := c.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}
