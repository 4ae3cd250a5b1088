package postgres

import (
	"context"
	"fmt"

	"skyStop/business/discovery"
	"skyStop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommissionTierRepository struct {
	DB *gorm.DB
}

var _ discovery.CommissionTierRepository = (*CommissionTierRepository)(nil)

func NewCommissionTierRepository(db *gorm.DB) *CommissionTierRepository {
	return &CommissionTierRepository{DB: db}
}

func (r *CommissionTierRepository) TierTable(ctx context.Context) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var tiers []domain.CommissionTier
	if err := r.DB.WithContext(ctx).Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to query commission tiers: %w", err)
	}

	table := make(map[string]float64, len(tiers))
	for _, t := range tiers {
		table[t.Tier] = t.BaseRate
	}

	return table, nil
}

func (r *CommissionTierRepository) Upsert(ctx context.Context, tier domain.CommissionTier) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tier"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_rate", "updated_at"}),
		}).
		Create(&tier).Error
	if err != nil {
		return fmt.Errorf("failed to upsert commission tier: %w", err)
	}

	return nil
}
