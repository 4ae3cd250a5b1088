package postgres

import (
	"context"
	"fmt"

	"skyStop/business/discovery"
	"skyStop/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

var _ discovery.SnapshotRepository = (*RecommendationRepository)(nil)

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) Save(ctx context.Context, snap domain.RecommendationSnapshot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&snap).Error; err != nil {
		return fmt.Errorf("failed to save recommendation snapshot: %w", err)
	}

	return nil
}
