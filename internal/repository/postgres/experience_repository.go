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

type ExperienceRepository struct {
	DB *gorm.DB
}

var _ discovery.ExperienceRepository = (*ExperienceRepository)(nil)

func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{DB: db}
}

func (r *ExperienceRepository) FindByDestination(ctx context.Context, destinationCode string) ([]domain.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var experiences []domain.Experience
	err := r.DB.WithContext(ctx).
		Where("destination_code = ?", destinationCode).
		Order("experience_id ASC").
		Find(&experiences).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}

	for i := range experiences {
		if len(experiences[i].CategoriesRaw) > 0 {
			_ = json.Unmarshal(experiences[i].CategoriesRaw, &experiences[i].Categories)
		}
	}

	return experiences, nil
}

func (r *ExperienceRepository) Upsert(ctx context.Context, exp domain.Experience) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(exp.CategoriesRaw) == 0 && len(exp.Categories) > 0 {
		raw, _ := json.Marshal(exp.Categories)
		exp.CategoriesRaw = raw
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "experience_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"destination_code",
				"categories",
				"duration_minutes",
				"flexible_duration",
				"base_price",
				"currency",
				"activity_type",
				"weather_dependency",
				"physical_demand",
				"rating_avg",
				"rating_count",
				"updated_at",
			}),
		}).
		Create(&exp).Error
	if err != nil {
		return fmt.Errorf("failed to upsert experience: %w", err)
	}

	return nil
}
