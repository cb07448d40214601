package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"saas-landing-api/internal/domain/catalog"
)

func TestPlanRepoPG_SeedAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalog.DefaultPlans()))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "Free", plans[0].Name)
	assert.Equal(t, 0, plans[0].Price)
	assert.Equal(t, "Pro", plans[1].Name)
	assert.Equal(t, 19, plans[1].Price)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, "Business", plans[2].Name)
	assert.Equal(t, 49, plans[2].Price)

	for _, p := range plans {
		assert.Equal(t, "mo", p.Period)
		assert.NotEmpty(t, p.Features)
	}
}

func TestPlanRepoPG_Seed_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalog.DefaultPlans()))
	require.NoError(t, repo.Seed(ctx, catalog.DefaultPlans()))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestPlanRepoPG_List_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepoPG(db, zaptest.NewLogger(t))

	plans, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, plans)
}
