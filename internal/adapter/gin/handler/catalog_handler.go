package handler

import (
	"context"
	"net/http"

	domain "saas-landing-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogUsecase is the slice of the catalog usecase the handler depends on.
type CatalogUsecase interface {
	ListPlans(ctx context.Context) []domain.Plan
}

// CatalogHandler handles HTTP requests for the pricing catalog.
type CatalogHandler struct {
	uc  CatalogUsecase
	log *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(uc CatalogUsecase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:  uc,
		log: log,
	}
}

// PricingResponse represents the HTTP response for the pricing catalog
type PricingResponse struct {
	Plans []domain.Plan `json:"plans"`
}

// Pricing handles GET /pricing
func (h *CatalogHandler) Pricing(c *gin.Context) {
	plans := h.uc.ListPlans(c.Request.Context())
	c.JSON(http.StatusOK, PricingResponse{Plans: plans})
}
