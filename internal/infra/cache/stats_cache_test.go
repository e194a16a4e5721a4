package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jcarter-pt/traincrm/internal/usecase"
)

func newTestCache(t *testing.T) (*StatsCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStatsCache(client), mr
}

func TestStatsCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)

	stats := &usecase.DashboardStats{Prospects: 4, TasksDueToday: 2}
	cache.Set(ctx, "user-1", stats)

	got, ok := cache.Get(ctx, "user-1")
	assert.True(t, ok)
	assert.Equal(t, stats, got)

	// Keys are per trainer.
	_, ok = cache.Get(ctx, "user-2")
	assert.False(t, ok)
}

func TestStatsCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "user-1", &usecase.DashboardStats{Prospects: 1})
	mr.FastForward(statsTTL + 1)

	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)
}

func TestStatsCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "user-1", &usecase.DashboardStats{Prospects: 1})
	cache.Invalidate(ctx, "user-1")

	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)
}

func TestStatsCacheBadPayloadDegradesToMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	mr.Set(statsKey("user-1"), "{not json")

	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)
	// The poisoned key is dropped, not left to fail every read for a minute.
	assert.False(t, mr.Exists(statsKey("user-1")))
}

func TestStatsCacheRedisDownDegradesToMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)

	// Writes and invalidations just log; nothing panics or errors upward.
	cache.Set(ctx, "user-1", &usecase.DashboardStats{Prospects: 1})
	cache.Invalidate(ctx, "user-1")
}
