package domain

import "time"

// StrategyConditions bound when a strategy applies. A nil/empty field means
// "no constraint" on that dimension.
type StrategyConditions struct {
	MinLayoverMinutes *int     `json:"min_layover_minutes,omitempty"`
	MaxLayoverMinutes *int     `json:"max_layover_minutes,omitempty"`
	WeatherCategories []string `json:"weather_categories,omitempty"`
	UserTiers         []string `json:"user_tiers,omitempty"`
	DestinationCodes  []string `json:"destination_codes,omitempty"`
	ExperienceTypes   []string `json:"experience_types,omitempty"`
}

// StrategyAdjustments describe what an applied strategy does to the price and
// commission. Min/max price clamps are applied immediately after the strategy
// that carries them, not once at the end of the chain.
type StrategyAdjustments struct {
	PriceMultiplier     float64  `json:"price_multiplier"`
	CommissionRateDelta float64  `json:"commission_rate_delta"`
	MinPrice            *float64 `json:"min_price,omitempty"`
	MaxPrice            *float64 `json:"max_price,omitempty"`
}

// PricingStrategy is configuration data, not code. Conditions and adjustments
// are stored as JSONB and hydrated by the repository.
type PricingStrategy struct {
	ID             uint                `gorm:"primaryKey" json:"-"`
	StrategyID     string              `gorm:"column:strategy_id;uniqueIndex;not null" json:"strategy_id"`
	Name           string              `gorm:"column:name;not null" json:"name"`
	Priority       int                 `gorm:"column:priority;not null" json:"priority"`
	Active         bool                `gorm:"column:active;not null" json:"active"`
	ValidFrom      time.Time           `gorm:"column:valid_from;not null" json:"valid_from"`
	ValidUntil     *time.Time          `gorm:"column:valid_until" json:"valid_until,omitempty"`
	ConditionsRaw  []byte              `gorm:"column:conditions;type:jsonb" json:"-"`
	Conditions     StrategyConditions  `gorm:"-" json:"conditions"`
	AdjustmentsRaw []byte              `gorm:"column:adjustments;type:jsonb" json:"-"`
	Adjustments    StrategyAdjustments `gorm:"-" json:"adjustments"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// PricingResult is the strategy engine output for one candidate.
type PricingResult struct {
	FinalPrice           float64  `json:"final_price"`
	AppliedStrategyIDs   []string `json:"applied_strategy_ids"`
	CommissionAdjustment float64  `json:"commission_adjustment"`
}

// CommissionTier maps a loyalty tier to the platform's base commission rate.
type CommissionTier struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Tier      string    `gorm:"column:tier;uniqueIndex;not null" json:"tier"`
	BaseRate  float64   `gorm:"column:base_rate;not null" json:"base_rate"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// CommissionBreakdown is the commission calculator output. All amounts are
// rounded to 2 decimal places, the rate is clamped to [0.10, 0.30].
type CommissionBreakdown struct {
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
	PartnerPayout    float64 `json:"partner_payout"`
	PlatformRevenue  float64 `json:"platform_revenue"`
	FallbackApplied  bool    `json:"fallback_applied,omitempty"`
}
