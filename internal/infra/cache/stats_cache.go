package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcarter-pt/traincrm/internal/usecase"
)

const statsTTL = 60 * time.Second

// StatsCache keeps dashboard numbers in Redis for a short window. Every
// failure path degrades to a cache miss; a dead Redis never breaks a read.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func statsKey(userID string) string {
	return "traincrm:stats:" + userID
}

func (c *StatsCache) Get(ctx context.Context, userID string) (*usecase.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️ stats cache read failed: %v", err)
		}
		return nil, false
	}

	var stats usecase.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		log.Printf("⚠️ stats cache held bad JSON, dropping key: %v", err)
		c.client.Del(ctx, statsKey(userID))
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, userID string, stats *usecase.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(userID), raw, statsTTL).Err(); err != nil {
		log.Printf("⚠️ stats cache write failed: %v", err)
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		log.Printf("⚠️ stats cache invalidation failed: %v", err)
	}
}
