package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChromaDiv/supply-chain-app/internal/analytics"
	"github.com/ChromaDiv/supply-chain-app/internal/config"
)

const dashboardKey = "inventory:dashboard"

// DashboardCache holds the computed dashboard between mutations. The cached
// value is always invalidated on any write path, so derive-on-read semantics
// survive: a hit is only ever the dashboard of the current data.
type DashboardCache interface {
	Get(ctx context.Context) (analytics.Dashboard, bool, error)
	Set(ctx context.Context, dash analytics.Dashboard) error
	Invalidate(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

// NewDashboardCache builds a redis-backed cache, or a noop when caching is
// disabled.
func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.DashboardTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &redisDashboardCache{client: client, ttl: ttl}, nil
}

// NewNoopDashboardCache returns a cache that never hits.
func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) Get(ctx context.Context) (analytics.Dashboard, bool, error) {
	payload, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err == redis.Nil {
		return analytics.Dashboard{}, false, nil
	}
	if err != nil {
		return analytics.Dashboard{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var dash analytics.Dashboard
	if err := json.Unmarshal(payload, &dash); err != nil {
		return analytics.Dashboard{}, false, fmt.Errorf("decode dashboard cache: %w", err)
	}
	return dash, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, dash analytics.Dashboard) error {
	payload, err := json.Marshal(dash)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}

	if err := c.client.Set(ctx, dashboardKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, dashboardKey).Err()
}

func (n *noopDashboardCache) Get(ctx context.Context) (analytics.Dashboard, bool, error) {
	return analytics.Dashboard{}, false, nil
}

func (n *noopDashboardCache) Set(ctx context.Context, dash analytics.Dashboard) error {
	return nil
}

func (n *noopDashboardCache) Invalidate(ctx context.Context) error {
	return nil
}
