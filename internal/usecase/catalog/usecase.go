package catalog

import (
	"context"

	"go.uber.org/zap"

	"saas-landing-api/internal/adapter/cache"
	domain "saas-landing-api/internal/domain/catalog"
)

// Repository defines the interface for pricing catalog access.
type Repository interface {
	List(ctx context.Context) ([]domain.Plan, error)
}

// Usecase serves the pricing catalog with a cache-aside lookup. If cache is
// nil, caching is disabled; if the repository is nil or failing, the built-in
// default catalog is returned so the endpoint never comes up empty.
type Usecase struct {
	repo  Repository
	cache cache.PlanCache
	log   *zap.Logger
}

// New creates a new instance of Usecase with the provided repository and cache.
func New(r Repository, c cache.PlanCache, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, cache: c, log: log}
}

// ListPlans returns the pricing catalog: cache first, then the store, then
// the built-in default.
func (uc *Usecase) ListPlans(ctx context.Context) []domain.Plan {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn("catalog cache error, falling back to store", zap.Error(err))
		} else if len(cached) > 0 {
			uc.log.Debug("catalog served from cache")
			return cached
		}
	}

	if uc.repo == nil {
		uc.log.Debug("catalog store not configured, serving default catalog")
		return domain.DefaultPlans()
	}

	plans, err := uc.repo.List(ctx)
	if err != nil || len(plans) == 0 {
		uc.log.Warn("catalog store unavailable, serving default catalog", zap.Error(err))
		return domain.DefaultPlans()
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, plans); err != nil {
			uc.log.Warn("failed to cache catalog", zap.Error(err))
		}
	}

	return plans
}
