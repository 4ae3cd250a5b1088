package domain

import "time"

// Loyalty tiers, lowest first.
const (
	TierBronze     = "bronze"
	TierSilver     = "silver"
	TierGold       = "gold"
	TierPlatinum   = "platinum"
	TierEnterprise = "enterprise"
)

// PastBooking is one entry of the traveler's booking history.
type PastBooking struct {
	ExperienceID string    `json:"experience_id"`
	Category     string    `json:"category"`
	Satisfaction float64   `json:"satisfaction"` // 0..1
	BookedAt     time.Time `json:"booked_at"`
}

// UserProfile is supplied by the identity collaborator and read-only inside
// the pipeline. Affinities and history are stored as JSONB and hydrated by
// the repository.
type UserProfile struct {
	ID                 uint               `gorm:"primaryKey" json:"-"`
	UserID             uint               `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	LoyaltyTier        string             `gorm:"column:loyalty_tier;not null" json:"loyalty_tier"`
	TravelExperience   string             `gorm:"column:travel_experience" json:"travel_experience"` // novice|intermediate|expert
	RiskTolerance      string             `gorm:"column:risk_tolerance" json:"risk_tolerance"`       // low|medium|high
	CulturalInterest   float64            `gorm:"column:cultural_interest" json:"cultural_interest"` // 0..1
	PhysicalCapability string             `gorm:"column:physical_capability" json:"physical_capability"`
	GroupSize          int                `gorm:"column:group_size" json:"group_size"`
	BudgetMin          float64            `gorm:"column:budget_min" json:"budget_min"`
	BudgetMax          float64            `gorm:"column:budget_max" json:"budget_max"`
	AffinitiesRaw      []byte             `gorm:"column:affinities;type:jsonb" json:"-"`
	Affinities         map[string]float64 `gorm:"-" json:"affinities"`
	HistoryRaw         []byte             `gorm:"column:history;type:jsonb" json:"-"`
	History            []PastBooking      `gorm:"-" json:"history"`
	CreatedAt          time.Time          `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt          time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// DefaultProfile is the neutral profile used when the traveler is unknown.
func DefaultProfile(userID uint) UserProfile {
	return UserProfile{
		UserID:             userID,
		LoyaltyTier:        TierBronze,
		TravelExperience:   "intermediate",
		RiskTolerance:      "medium",
		CulturalInterest:   0.5,
		PhysicalCapability: DemandModerate,
		GroupSize:          1,
	}
}
