package domain

import "time"

// ScoringFactors are the eleven independent [0,1] scores computed per
// candidate before they are combined into one ranking score.
type ScoringFactors struct {
	WeatherCompatibility   float64 `json:"weather_compatibility"`
	PersonalizedPreference float64 `json:"personalized_preference"`
	TimeOptimization       float64 `json:"time_optimization"`
	CostEfficiency         float64 `json:"cost_efficiency"`
	SafetyAssurance        float64 `json:"safety_assurance"`
	CulturalAlignment      float64 `json:"cultural_alignment"`
	PhysicalDemandMatch    float64 `json:"physical_demand_match"`
	SeasonalRelevance      float64 `json:"seasonal_relevance"`
	SocialProofStrength    float64 `json:"social_proof_strength"`
	BookingProbability     float64 `json:"booking_probability"`
	RevenueOptimization    float64 `json:"revenue_optimization"`
}

// RankedRecommendation is the pipeline's output unit.
type RankedRecommendation struct {
	Experience         Experience     `json:"experience"`
	Factors            ScoringFactors `json:"factors"`
	Score              float64        `json:"score"`
	DynamicPrice       float64        `json:"dynamic_price"`
	CommissionRate     float64        `json:"commission_rate"`
	CommissionAmount   float64        `json:"commission_amount"`
	PartnerPayout      float64        `json:"partner_payout"`
	AppliedStrategyIDs []string       `json:"applied_strategy_ids"`
	Explanations       []string       `json:"explanations"`
	WeatherWarnings    []string       `json:"weather_warnings,omitempty"`
}

// PriceRange of a recommendation set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DiscoverySummary is the aggregate block consumed by the dashboard layer.
type DiscoverySummary struct {
	TotalCandidates      int            `json:"total_candidates"`
	ReturnedCount        int            `json:"returned_count"`
	AverageScore         float64        `json:"average_score"`
	BestScore            float64        `json:"best_score"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	PriceRange           PriceRange     `json:"price_range"`
	TimeUtilizationPct   float64        `json:"time_utilization_pct"`
}

// RecommendationSet is the full discovery response.
type RecommendationSet struct {
	SetID           string                 `json:"set_id"`
	AirportCode     string                 `json:"airport_code"`
	GeneratedAt     time.Time              `json:"generated_at"`
	Layover         LayoverContext         `json:"layover"`
	Transit         TransitAnalysis        `json:"transit"`
	Weather         WeatherSnapshot        `json:"weather"`
	Recommendations []RankedRecommendation `json:"recommendations"`
	Summary         DiscoverySummary       `json:"summary"`
}

// RecommendationSnapshot is the persisted form of a served set, written
// best-effort for the dashboard collaborator.
type RecommendationSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SetID       string    `gorm:"column:set_id;uniqueIndex;not null" json:"set_id"`
	UserID      uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	AirportCode string    `gorm:"column:airport_code;index;not null" json:"airport_code"`
	Payload     []byte    `gorm:"column:payload;type:jsonb" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
