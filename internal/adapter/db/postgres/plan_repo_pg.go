package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"saas-landing-api/internal/domain/catalog"
)

// PlanRepoPG implements the catalog.Repository interface using GORM.
type PlanRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPlanRepoPG creates a new instance of PlanRepoPG.
func NewPlanRepoPG(db *gorm.DB, log *zap.Logger) *PlanRepoPG {
	return &PlanRepoPG{db: db, log: log}
}

// PlanSchema represents the database schema for the plans table.
type PlanSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null;uniqueIndex"`
	Price     int    `gorm:"not null"`
	Period    string `gorm:"not null"`
	Popular   bool   `gorm:"not null;default:false"`
	Features  string `gorm:"not null"` // JSON-encoded feature list
	SortOrder int    `gorm:"not null"`
}

// TableName specifies the table name for the PlanSchema model.
func (PlanSchema) TableName() string {
	return "plans"
}

// List retrieves all pricing plans ordered for display.
func (r *PlanRepoPG) List(ctx context.Context) ([]catalog.Plan, error) {
	var models []PlanSchema
	if err := r.db.WithContext(ctx).Order("sort_order").Find(&models).Error; err != nil {
		r.log.Error("failed to list plans from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]catalog.Plan, len(models))
	for i, model := range models {
		var features []string
		if err := json.Unmarshal([]byte(model.Features), &features); err != nil {
			r.log.Error("failed to decode plan features", zap.Error(err), zap.String("plan", model.Name))
			return nil, fmt.Errorf("failed to decode plan features: %w", err)
		}
		plans[i] = catalog.Plan{
			Name:     model.Name,
			Price:    model.Price,
			Period:   model.Period,
			Popular:  model.Popular,
			Features: features,
		}
	}

	return plans, nil
}

// Seed inserts the given plans when they are not present yet. Existing rows
// are left untouched, so reseeding on every startup is safe.
func (r *PlanRepoPG) Seed(ctx context.Context, plans []catalog.Plan) error {
	for i, p := range plans {
		features, err := json.Marshal(p.Features)
		if err != nil {
			return fmt.Errorf("failed to encode plan features: %w", err)
		}

		model := PlanSchema{
			Name:      p.Name,
			Price:     p.Price,
			Period:    p.Period,
			Popular:   p.Popular,
			Features:  string(features),
			SortOrder: i,
		}

		if err := r.db.WithContext(ctx).
			Where("name = ?", p.Name).
			FirstOrCreate(&model).Error; err != nil {
			r.log.Error("failed to seed plan", zap.Error(err), zap.String("plan", p.Name))
			return fmt.Errorf("failed to seed plan %q: %w", p.Name, err)
		}
	}

	r.log.Info("pricing plans seeded", zap.Int("count", len(plans)))
	return nil
}
