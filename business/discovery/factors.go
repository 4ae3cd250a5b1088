package discovery

import (
	"math"

	"skyStop/domain"
)

// Category labels treated as culturally oriented for the cultural-alignment
// factor.
var culturalCategories = map[string]bool{
	"cultural": true,
	"culinary": true,
	"heritage": true,
	"museum":   true,
	"art":      true,
}

// buildFactors derives the eleven [0,1] scoring factors for one candidate.
// Everything here is deterministic; re-scoring an unchanged candidate with
// unchanged context yields identical numbers.
func buildFactors(
	exp domain.Experience,
	layover domain.LayoverContext,
	analysis domain.TransitAnalysis,
	weather domain.WeatherSnapshot,
	weatherScore domain.WeatherScore,
	profile domain.UserProfile,
	dynamicPrice float64,
	commission domain.CommissionBreakdown,
) domain.ScoringFactors {
	return domain.ScoringFactors{
		WeatherCompatibility:   weatherScore.Score,
		PersonalizedPreference: preferenceFactor(exp, profile),
		TimeOptimization:       timeFactor(exp, analysis),
		CostEfficiency:         costFactor(dynamicPrice, profile),
		SafetyAssurance:        clamp01(layover.City.SafetyRating / 5),
		CulturalAlignment:      culturalFactor(exp, profile),
		PhysicalDemandMatch:    physicalFactor(exp, profile),
		SeasonalRelevance:      seasonalFactor(exp, weather),
		SocialProofStrength:    socialProofFactor(exp),
		BookingProbability:     bookingProbability(exp, layover, weather, dynamicPrice),
		RevenueOptimization:    revenueFactor(commission),
	}
}

// preferenceFactor blends declared category affinities with satisfaction
// from past bookings in the same categories. No signal means neutral 0.5.
func preferenceFactor(exp domain.Experience, profile domain.UserProfile) float64 {
	affinitySum := 0.0
	affinityN := 0
	for _, cat := range exp.Categories {
		if v, ok := profile.Affinities[cat]; ok {
			affinitySum += v
			affinityN++
		}
	}

	historySum := 0.0
	historyN := 0
	for _, b := range profile.History {
		for _, cat := range exp.Categories {
			if b.Category == cat {
				historySum += b.Satisfaction
				historyN++
			}
		}
	}

	if affinityN == 0 && historyN == 0 {
		return 0.5
	}

	score := 0.0
	weight := 0.0
	if affinityN > 0 {
		score += 0.7 * (affinitySum / float64(affinityN))
		weight += 0.7
	}
	if historyN > 0 {
		score += 0.3 * (historySum / float64(historyN))
		weight += 0.3
	}

	return clamp01(score / weight)
}

// timeFactor rewards experiences that use 30-60% of the available city time
// and rules out anything that does not fit at all.
func timeFactor(exp domain.Experience, analysis domain.TransitAnalysis) float64 {
	avail := analysis.AvailableTimeInCityMinutes
	if avail <= 0 || exp.DurationMinutes > avail {
		return 0
	}

	ratio := float64(exp.DurationMinutes) / float64(avail)
	switch {
	case ratio < 0.3:
		return clamp01(0.5 + (ratio/0.3)*0.5)
	case ratio <= 0.6:
		return 1.0
	default:
		return clamp01(1.0 - (ratio-0.6)/0.4*0.8)
	}
}

func costFactor(price float64, profile domain.UserProfile) float64 {
	if profile.BudgetMax <= 0 {
		return 0.5
	}
	if price <= profile.BudgetMin {
		return 1.0
	}
	if price <= profile.BudgetMax {
		span := profile.BudgetMax - profile.BudgetMin
		if span <= 0 {
			return 1.0
		}
		return clamp01(1.0 - 0.5*(price-profile.BudgetMin)/span)
	}
	return clamp01(0.5 - (price-profile.BudgetMax)/profile.BudgetMax)
}

func culturalFactor(exp domain.Experience, profile domain.UserProfile) float64 {
	for _, cat := range exp.Categories {
		if culturalCategories[cat] {
			return clamp01(0.4 + 0.6*profile.CulturalInterest)
		}
	}
	return 0.5
}

func physicalFactor(exp domain.Experience, profile domain.UserProfile) float64 {
	demand := map[string]float64{
		domain.DemandLow:      0.25,
		domain.DemandModerate: 0.55,
		domain.DemandHigh:     0.9,
	}[exp.PhysicalDemand]
	if demand == 0 {
		demand = 0.55
	}

	capability := map[string]float64{
		domain.DemandLow:      0.3,
		domain.DemandModerate: 0.6,
		domain.DemandHigh:     1.0,
	}[profile.PhysicalCapability]
	if capability == 0 {
		capability = 0.6
	}

	return clamp01(1 - math.Abs(demand-capability))
}

// seasonalFactor approximates season fit from the thermal comfort of the
// snapshot: outdoor activities want comfortable temperatures, indoor ones
// gain relevance when it is uncomfortable outside.
func seasonalFactor(exp domain.Experience, weather domain.WeatherSnapshot) float64 {
	comfort := clamp01(1 - math.Abs(weather.TemperatureC-21)/15)

	switch exp.ActivityType {
	case domain.ActivityOutdoor:
		return clamp01(0.3 + 0.7*comfort)
	case domain.ActivityIndoor:
		return clamp01(0.5 + 0.5*(1-comfort))
	default:
		return 0.6
	}
}

func socialProofFactor(exp domain.Experience) float64 {
	if exp.RatingAvg == nil {
		return 0.4
	}
	base := *exp.RatingAvg / 5
	volume := math.Min(1, float64(exp.RatingCount)/100)
	return clamp01(base * (0.5 + 0.5*volume))
}

// bookingProbability is a heuristic proxy, not a trained model. It starts at
// 0.5 and moves by fixed amounts, clamped to [0.1, 0.9].
func bookingProbability(exp domain.Experience, layover domain.LayoverContext, weather domain.WeatherSnapshot, dynamicPrice float64) float64 {
	p := 0.5

	if exp.ActivityType == domain.ActivityOutdoor && weather.GoodForOutdoor {
		p += 0.2
	}

	if exp.BasePrice > 0 {
		ratio := dynamicPrice / exp.BasePrice
		switch {
		case ratio <= 0.9:
			p += 0.15
		case ratio <= 1.0:
			p += 0.1
		case ratio >= 1.3:
			p -= 0.15
		case ratio > 1.1:
			p -= 0.1
		}
	}

	if layover.DurationMinutes > 0 {
		share := float64(exp.DurationMinutes) / float64(layover.DurationMinutes)
		if share >= 0.3 && share <= 0.6 {
			p += 0.15
		}
		if share > 0.8 {
			p -= 0.2
		}
	}

	if exp.RatingAvg != nil && *exp.RatingAvg >= 4.0 {
		p += 0.1
	}

	if p < 0.1 {
		p = 0.1
	}
	if p > 0.9 {
		p = 0.9
	}
	return p
}

func revenueFactor(commission domain.CommissionBreakdown) float64 {
	rateShare := (commission.CommissionRate - 0.10) / 0.20
	amountShare := math.Min(1, commission.CommissionAmount/30)
	return clamp01(0.5*rateShare + 0.5*amountShare)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
