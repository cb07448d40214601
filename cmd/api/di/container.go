package di

import (
	"context"
	"fmt"
	"time"

	"saas-landing-api/cmd/api/infrastructure"
	"saas-landing-api/internal/adapter/cache"
	"saas-landing-api/internal/adapter/db/postgres"
	ginhandler "saas-landing-api/internal/adapter/gin/handler"
	"saas-landing-api/internal/config"
	domaincatalog "saas-landing-api/internal/domain/catalog"
	"saas-landing-api/internal/usecase/auth"
	"saas-landing-api/internal/usecase/catalog"
	redisclient "saas-landing-api/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	DB             *gorm.DB
	RedisClient    *redisclient.Client
	AuthUC         *auth.Usecase
	CatalogUC      *catalog.Usecase
	AuthHandler    *ginhandler.AuthHandler
	CatalogHandler *ginhandler.CatalogHandler
	SystemHandler  *ginhandler.SystemHandler
}

// NewContainer creates and initializes all application dependencies.
// A missing or unreachable database or Redis does not abort startup: the
// service comes up degraded, auth answers with the store-unavailable error,
// and the diagnostics endpoint reports the condition.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Database (optional at startup)
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		l.Warn("starting without database", zap.Error(err))
		db = nil
	}

	var authRepo auth.Repository
	var catalogRepo catalog.Repository
	if db != nil {
		if err := postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		planRepo := postgres.NewPlanRepoPG(db, l)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := planRepo.Seed(ctx, domaincatalog.DefaultPlans()); err != nil {
			return nil, fmt.Errorf("failed to seed pricing plans: %w", err)
		}

		authRepo = postgres.NewUserRepoPG(db, l)
		catalogRepo = planRepo
	}

	// Redis catalog cache (optional at startup)
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		l.Warn("starting without catalog cache", zap.Error(err))
		rdb = nil
	}

	var planCache cache.PlanCache
	if rdb != nil {
		planCache = cache.NewRedisPlanCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
	}

	// Usecases
	authUC := auth.New(authRepo, l)
	catalogUC := catalog.New(catalogRepo, planCache, l)

	// Handlers
	authHandler := ginhandler.NewAuthHandler(authUC, l)
	catalogHandler := ginhandler.NewCatalogHandler(catalogUC, l)
	systemHandler := ginhandler.NewSystemHandler(db, rdb, cfg, l)

	return &Container{
		Config:         cfg,
		Logger:         l,
		DB:             db,
		RedisClient:    rdb,
		AuthUC:         authUC,
		CatalogUC:      catalogUC,
		AuthHandler:    authHandler,
		CatalogHandler: catalogHandler,
		SystemHandler:  systemHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
