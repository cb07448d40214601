package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "saas-landing-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// staticCatalog is a stub CatalogUsecase serving a fixed plan list
type staticCatalog struct {
	plans []domain.Plan
}

func (s *staticCatalog) ListPlans(ctx context.Context) []domain.Plan {
	return s.plans
}

func TestCatalogHandler_Pricing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(&staticCatalog{plans: domain.DefaultPlans()}, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/pricing", h.Pricing)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pricing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp PricingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Plans, 3)

	assert.Equal(t, "Free", resp.Plans[0].Name)
	assert.Equal(t, 0, resp.Plans[0].Price)
	assert.False(t, resp.Plans[0].Popular)

	assert.Equal(t, "Pro", resp.Plans[1].Name)
	assert.Equal(t, 19, resp.Plans[1].Price)
	assert.True(t, resp.Plans[1].Popular)

	assert.Equal(t, "Business", resp.Plans[2].Name)
	assert.Equal(t, 49, resp.Plans[2].Price)

	for _, p := range resp.Plans {
		assert.Equal(t, "mo", p.Period)
		assert.NotEmpty(t, p.Features)
	}
}
