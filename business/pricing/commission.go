package pricing

import (
	"math"

	"skyStop/domain"
	"skyStop/pkg/logger"
)

// Commission rate bounds enforced regardless of tier rates or strategy
// adjustments.
const (
	MinCommissionRate = 0.10
	MaxCommissionRate = 0.30
)

// DefaultTierTable maps loyalty tiers to base commission rates.
func DefaultTierTable() map[string]float64 {
	return map[string]float64{
		domain.TierBronze:     0.25,
		domain.TierSilver:     0.22,
		domain.TierGold:       0.20,
		domain.TierPlatinum:   0.17,
		domain.TierEnterprise: 0.15,
	}
}

type CommissionCalculator struct {
	tierTable map[string]float64
}

func NewCommissionCalculator(tierTable map[string]float64) *CommissionCalculator {
	if len(tierTable) == 0 {
		tierTable = DefaultTierTable()
	}
	return &CommissionCalculator{tierTable: tierTable}
}

// Calculate resolves the commission tuple for a priced candidate. It never
// fails: an unknown tier falls back to the bronze base rate and flags the
// breakdown so the caller can record the synthetic "fallback" strategy id.
func (c *CommissionCalculator) Calculate(finalPrice float64, userTier string, commissionAdjustment float64) domain.CommissionBreakdown {
	if finalPrice < 0 {
		finalPrice = 0
	}

	baseRate, ok := c.tierTable[userTier]
	fallback := false
	if !ok {
		logger.Warn("unknown loyalty tier, falling back to bronze rate", "tier", userTier)
		baseRate, ok = c.tierTable[domain.TierBronze]
		if !ok {
			baseRate = 0.25
		}
		fallback = true
	}

	rate := clampRate(baseRate + commissionAdjustment)

	amount := round2(finalPrice * rate)
	payout := round2(finalPrice - amount)

	return domain.CommissionBreakdown{
		CommissionRate:   rate,
		CommissionAmount: amount,
		PartnerPayout:    payout,
		PlatformRevenue:  amount,
		FallbackApplied:  fallback,
	}
}

func clampRate(rate float64) float64 {
	if rate < MinCommissionRate {
		return MinCommissionRate
	}
	if rate > MaxCommissionRate {
		return MaxCommissionRate
	}
	return rate
}

// round2 rounds to 2 decimal places, half up.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
