package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"skyStop/business/discovery"
	"skyStop/domain"

	"gorm.io/gorm"
)

type UserProfileRepository struct {
	DB *gorm.DB
}

var _ discovery.UserProfileRepository = (*UserProfileRepository)(nil)

func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{DB: db}
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID uint) (domain.UserProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	var profile domain.UserProfile
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return domain.UserProfile{}, false, nil
	}
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("failed to query user profile: %w", err)
	}

	if len(profile.AffinitiesRaw) > 0 {
		_ = json.Unmarshal(profile.AffinitiesRaw, &profile.Affinities)
	}
	if len(profile.HistoryRaw) > 0 {
		_ = json.Unmarshal(profile.HistoryRaw, &profile.History)
	}

	return profile, true, nil
}
