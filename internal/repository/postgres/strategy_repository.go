package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"skyStop/business/discovery"
	"skyStop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StrategyRepository struct {
	DB *gorm.DB
}

var _ discovery.StrategyRepository = (*StrategyRepository)(nil)

func NewStrategyRepository(db *gorm.DB) *StrategyRepository {
	return &StrategyRepository{DB: db}
}

func (r *StrategyRepository) FindActive(ctx context.Context) ([]domain.PricingStrategy, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var strategies []domain.PricingStrategy
	err := r.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("priority DESC, strategy_id ASC").
		Find(&strategies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing strategies: %w", err)
	}

	for i := range strategies {
		hydrateStrategy(&strategies[i])
	}

	return strategies, nil
}

func (r *StrategyRepository) FindAll(ctx context.Context) ([]domain.PricingStrategy, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var strategies []domain.PricingStrategy
	err := r.DB.WithContext(ctx).
		Order("priority DESC, strategy_id ASC").
		Find(&strategies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing strategies: %w", err)
	}

	for i := range strategies {
		hydrateStrategy(&strategies[i])
	}

	return strategies, nil
}

func (r *StrategyRepository) Upsert(ctx context.Context, strategy domain.PricingStrategy) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(strategy.ConditionsRaw) == 0 {
		raw, _ := json.Marshal(strategy.Conditions)
		strategy.ConditionsRaw = raw
	}
	if len(strategy.AdjustmentsRaw) == 0 {
		raw, _ := json.Marshal(strategy.Adjustments)
		strategy.AdjustmentsRaw = raw
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "strategy_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"priority",
				"active",
				"valid_from",
				"valid_until",
				"conditions",
				"adjustments",
				"updated_at",
			}),
		}).
		Create(&strategy).Error
	if err != nil {
		return fmt.Errorf("failed to upsert pricing strategy: %w", err)
	}

	return nil
}

func hydrateStrategy(s *domain.PricingStrategy) {
	if len(s.ConditionsRaw) > 0 {
		_ = json.Unmarshal(s.ConditionsRaw, &s.Conditions)
	}
	if len(s.AdjustmentsRaw) > 0 {
		_ = json.Unmarshal(s.AdjustmentsRaw, &s.Adjustments)
	}
}
