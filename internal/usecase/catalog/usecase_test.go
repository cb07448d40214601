package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "saas-landing-api/internal/domain/catalog"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

// MockPlanCache is a mock implementation of the cache.PlanCache interface
type MockPlanCache struct {
	mock.Mock
}

func (m *MockPlanCache) Get(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanCache) Set(ctx context.Context, plans []domain.Plan) error {
	args := m.Called(ctx, plans)
	return args.Error(0)
}

func TestListPlans_FromStore_PopulatesCache(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockPlanCache)
	uc := New(mockRepo, mockCache, zaptest.NewLogger(t))
	ctx := context.Background()

	stored := domain.DefaultPlans()
	mockCache.On("Get", ctx).Return(nil, nil)
	mockRepo.On("List", ctx).Return(stored, nil)
	mockCache.On("Set", ctx, stored).Return(nil)

	plans := uc.ListPlans(ctx)

	assert.Len(t, plans, 3)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestListPlans_CacheHit_SkipsStore(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockPlanCache)
	uc := New(mockRepo, mockCache, zaptest.NewLogger(t))
	ctx := context.Background()

	cached := domain.DefaultPlans()
	mockCache.On("Get", ctx).Return(cached, nil)

	plans := uc.ListPlans(ctx)

	assert.Equal(t, cached, plans)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestListPlans_CacheError_FallsBackToStore(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockPlanCache)
	uc := New(mockRepo, mockCache, zaptest.NewLogger(t))
	ctx := context.Background()

	stored := domain.DefaultPlans()
	mockCache.On("Get", ctx).Return(nil, errors.New("redis down"))
	mockRepo.On("List", ctx).Return(stored, nil)
	mockCache.On("Set", ctx, stored).Return(nil)

	plans := uc.ListPlans(ctx)

	assert.Len(t, plans, 3)
	mockRepo.AssertExpectations(t)
}

func TestListPlans_NoStore_ServesDefaultCatalog(t *testing.T) {
	uc := New(nil, nil, zaptest.NewLogger(t))

	plans := uc.ListPlans(context.Background())

	assert.Len(t, plans, 3)
	assert.Equal(t, "Free", plans[0].Name)
	assert.Equal(t, "Pro", plans[1].Name)
	assert.Equal(t, "Business", plans[2].Name)
	assert.True(t, plans[1].Popular)
}

func TestListPlans_StoreError_ServesDefaultCatalog(t *testing.T) {
	mockRepo := new(MockRepository)
	uc := New(mockRepo, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	mockRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

	plans := uc.ListPlans(ctx)

	assert.Len(t, plans, 3)
	assert.Equal(t, []int{0, 19, 49}, []int{plans[0].Price, plans[1].Price, plans[2].Price})
	mockRepo.AssertExpectations(t)
}
