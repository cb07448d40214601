package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"saas-landing-api/internal/domain/catalog"
)

// catalogKey is the Redis key holding the serialized pricing catalog.
const catalogKey = "catalog:plans"

// PlanCache defines the interface for pricing catalog caching.
type PlanCache interface {
	// Get retrieves the cached catalog. Returns nil on a cache miss.
	Get(ctx context.Context) ([]catalog.Plan, error)

	// Set stores the catalog with the configured TTL.
	Set(ctx context.Context, plans []catalog.Plan) error
}

// RedisPlanCache implements PlanCache using Redis as the backing store.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisPlanCache creates a new Redis-backed catalog cache.
func NewRedisPlanCache(client *redis.Client, ttl time.Duration, log *zap.Logger) PlanCache {
	return &RedisPlanCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get retrieves the catalog from Redis.
func (c *RedisPlanCache) Get(ctx context.Context) ([]catalog.Plan, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("catalog cache miss")
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get catalog from cache", zap.Error(err))
		return nil, err
	}

	var plans []catalog.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		c.log.Error("failed to unmarshal cached catalog", zap.Error(err))
		return nil, err
	}

	c.log.Debug("catalog cache hit", zap.Int("plans", len(plans)))
	return plans, nil
}

// Set stores the catalog in Redis with TTL.
func (c *RedisPlanCache) Set(ctx context.Context, plans []catalog.Plan) error {
	if len(plans) == 0 {
		return fmt.Errorf("cannot cache empty catalog")
	}

	data, err := json.Marshal(plans)
	if err != nil {
		c.log.Error("failed to marshal catalog for cache", zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set catalog cache", zap.Error(err))
		return err
	}

	c.log.Debug("cached catalog", zap.Int("plans", len(plans)), zap.Duration("ttl", c.ttl))
	return nil
}
