package domain

import "time"

// Activity type values for an experience.
const (
	ActivityOutdoor = "outdoor"
	ActivityIndoor  = "indoor"
	ActivityMixed   = "mixed"
)

// Weather dependency levels.
const (
	WeatherDepNone   = "none"
	WeatherDepLow    = "low"
	WeatherDepMedium = "medium"
	WeatherDepHigh   = "high"
)

// Physical demand levels.
const (
	DemandLow      = "low"
	DemandModerate = "moderate"
	DemandHigh     = "high"
)

// Experience is an activity offer from the catalog, read-only inside the
// pipeline. Categories are stored as JSONB and hydrated by the repository.
type Experience struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	ExperienceID      string    `gorm:"column:experience_id;uniqueIndex;not null" json:"experience_id"`
	Title             string    `gorm:"column:title;not null" json:"title"`
	DestinationCode   string    `gorm:"column:destination_code;index;not null" json:"destination_code"`
	CategoriesRaw     []byte    `gorm:"column:categories;type:jsonb" json:"-"`
	Categories        []string  `gorm:"-" json:"categories"`
	DurationMinutes   int       `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	FlexibleDuration  bool      `gorm:"column:flexible_duration" json:"flexible_duration"`
	BasePrice         float64   `gorm:"column:base_price;not null" json:"base_price"`
	Currency          string    `gorm:"column:currency;not null" json:"currency"`
	ActivityType      string    `gorm:"column:activity_type;not null" json:"activity_type"`
	WeatherDependency string    `gorm:"column:weather_dependency;not null" json:"weather_dependency"`
	PhysicalDemand    string    `gorm:"column:physical_demand;not null" json:"physical_demand"`
	RatingAvg         *float64  `gorm:"column:rating_avg" json:"rating_avg,omitempty"`
	RatingCount       int       `gorm:"column:rating_count" json:"rating_count"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// PrimaryCategory is the category used by the diversity filter.
func (e Experience) PrimaryCategory() string {
	if len(e.Categories) == 0 {
		return "general"
	}
	return e.Categories[0]
}
