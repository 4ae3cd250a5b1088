package discovery

import (
	"math"

	"skyStop/domain"
)

// buildSummary aggregates the served set for the dashboard collaborator.
func buildSummary(recs []domain.RankedRecommendation, totalCandidates int, layover domain.LayoverContext) domain.DiscoverySummary {
	summary := domain.DiscoverySummary{
		TotalCandidates:      totalCandidates,
		ReturnedCount:        len(recs),
		CategoryDistribution: make(map[string]int),
	}

	if len(recs) == 0 {
		return summary
	}

	scoreSum := 0.0
	durationSum := 0
	minPrice := math.MaxFloat64
	maxPrice := 0.0

	for _, rec := range recs {
		scoreSum += rec.Score
		durationSum += rec.Experience.DurationMinutes
		summary.CategoryDistribution[rec.Experience.PrimaryCategory()]++

		if rec.Score > summary.BestScore {
			summary.BestScore = rec.Score
		}
		if rec.DynamicPrice < minPrice {
			minPrice = rec.DynamicPrice
		}
		if rec.DynamicPrice > maxPrice {
			maxPrice = rec.DynamicPrice
		}
	}

	summary.AverageScore = scoreSum / float64(len(recs))
	summary.PriceRange = domain.PriceRange{Min: minPrice, Max: maxPrice}

	if layover.DurationMinutes > 0 {
		avgDuration := float64(durationSum) / float64(len(recs))
		summary.TimeUtilizationPct = avgDuration / float64(layover.DurationMinutes) * 100
	}

	return summary
}
