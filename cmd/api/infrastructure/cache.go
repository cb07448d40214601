package infrastructure

import (
	"fmt"

	"saas-landing-api/internal/config"
	redisclient "saas-landing-api/pkg/redis"

	"go.uber.org/zap"
)

// NewRedisClient creates the Redis client for the catalog cache. Returns an
// error when REDIS_HOST is unset; the caller treats that as cache-disabled.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	if cfg.Redis.Host == "" {
		return nil, fmt.Errorf("REDIS_HOST is not set")
	}

	return redisclient.NewClient(redisclient.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, l)
}
