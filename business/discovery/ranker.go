package discovery

import (
	"sort"

	"skyStop/domain"
)

// Weights for combining the eleven scoring factors. They are tuned to sum to
// roughly 1 so the weighted sum lands in [0,1] naturally; the result is
// clamped regardless.
type Weights struct {
	Weather     float64
	Preference  float64
	Time        float64
	Cost        float64
	Safety      float64
	Cultural    float64
	Physical    float64
	Seasonal    float64
	SocialProof float64
	Booking     float64
	Revenue     float64
}

func BaseWeights() Weights {
	return Weights{
		Weather:     0.12,
		Preference:  0.14,
		Time:        0.12,
		Cost:        0.10,
		Safety:      0.10,
		Cultural:    0.08,
		Physical:    0.08,
		Seasonal:    0.06,
		SocialProof: 0.08,
		Booking:     0.06,
		Revenue:     0.06,
	}
}

// Price buckets used by the diversity filter.
const (
	bucketBudget   = "budget"   // < $25
	bucketModerate = "moderate" // < $75
	bucketPremium  = "premium"  // < $150
	bucketLuxury   = "luxury"
)

func priceBucket(price float64) string {
	switch {
	case price < 25:
		return bucketBudget
	case price < 75:
		return bucketModerate
	case price < 150:
		return bucketPremium
	default:
		return bucketLuxury
	}
}

type Ranker struct {
	base              Weights
	maxPerCategory    int
	maxPerPriceBucket int
}

func NewRanker(base Weights) *Ranker {
	return &Ranker{
		base:              base,
		maxPerCategory:    3,
		maxPerPriceBucket: 4,
	}
}

// personalize adjusts the base weight table for one traveler. Conservative
// travelers weigh safety more, novices lean on safety and social proof,
// experts trust their own preferences.
func (r *Ranker) personalize(profile domain.UserProfile) Weights {
	w := r.base

	if profile.RiskTolerance == "low" {
		w.Safety += 0.05
	}
	if profile.CulturalInterest >= 0.7 {
		w.Cultural += 0.04
	}

	switch profile.TravelExperience {
	case "novice":
		w.Safety += 0.03
		w.SocialProof += 0.02
	case "expert":
		w.Preference += 0.03
	}

	return w
}

// Combine folds the factors into one scalar with the traveler's personalized
// weights, clamped to [0,1].
func (r *Ranker) Combine(f domain.ScoringFactors, profile domain.UserProfile) float64 {
	w := r.personalize(profile)

	score := w.Weather*f.WeatherCompatibility +
		w.Preference*f.PersonalizedPreference +
		w.Time*f.TimeOptimization +
		w.Cost*f.CostEfficiency +
		w.Safety*f.SafetyAssurance +
		w.Cultural*f.CulturalAlignment +
		w.Physical*f.PhysicalDemandMatch +
		w.Seasonal*f.SeasonalRelevance +
		w.SocialProof*f.SocialProofStrength +
		w.Booking*f.BookingProbability +
		w.Revenue*f.RevenueOptimization

	return clamp01(score)
}

// Rank sorts scored candidates, applies the diversity filter, and truncates
// to maxResults. Ties break on experience id so re-ranking an unchanged list
// is fully deterministic.
func (r *Ranker) Rank(recs []domain.RankedRecommendation, maxResults int) []domain.RankedRecommendation {
	if maxResults <= 0 {
		maxResults = 10
	}

	sorted := make([]domain.RankedRecommendation, len(recs))
	copy(sorted, recs)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Experience.ExperienceID < sorted[j].Experience.ExperienceID
	})

	categoryCount := make(map[string]int)
	bucketCount := make(map[string]int)

	out := make([]domain.RankedRecommendation, 0, maxResults)
	for _, rec := range sorted {
		if len(out) >= maxResults {
			break
		}

		category := rec.Experience.PrimaryCategory()
		bucket := priceBucket(rec.DynamicPrice)

		if categoryCount[category] >= r.maxPerCategory {
			continue
		}
		if bucketCount[bucket] >= r.maxPerPriceBucket {
			continue
		}

		categoryCount[category]++
		bucketCount[bucket]++
		out = append(out, rec)
	}

	return out
}
