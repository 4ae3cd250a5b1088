package pricing

import (
	"slices"
	"sort"
	"time"

	"skyStop/domain"
	"skyStop/pkg/logger"
)

// Context is the request-scoped state strategies are matched against.
type Context struct {
	LayoverMinutes  int
	WeatherCategory string
	UserTier        string
	DestinationCode string
	ExperienceType  string
	Now             time.Time
}

type Engine struct {
	// baseMarkup is applied before any strategy; with zero strategies the
	// final price is exactly basePrice * baseMarkup.
	baseMarkup float64
}

func NewEngine(baseMarkup float64) *Engine {
	if baseMarkup <= 0 {
		baseMarkup = 1.0
	}
	return &Engine{baseMarkup: baseMarkup}
}

// Apply folds all matching strategies over the base price in descending
// priority order. Per-strategy min/max clamps run immediately after the
// strategy that carries them, so a later strategy sees the clamped price and
// may push it past an earlier strategy's bound. That ordering is intentional
// and must not be collapsed into a single final clamp.
func (e *Engine) Apply(basePrice float64, pctx Context, strategies []domain.PricingStrategy) domain.PricingResult {
	price := basePrice * e.baseMarkup
	commissionAdjustment := 0.0
	applied := make([]string, 0, len(strategies))

	matched := make([]domain.PricingStrategy, 0, len(strategies))
	for _, st := range strategies {
		if !st.Active {
			continue
		}
		if !validNow(st, pctx.Now) {
			continue
		}
		if !valid(st) {
			logger.Warn("skipping invalid pricing strategy",
				"strategy_id", st.StrategyID,
				"multiplier", st.Adjustments.PriceMultiplier,
			)
			StrategiesSkippedTotal.WithLabelValues(st.StrategyID).Inc()
			continue
		}
		if !matches(st.Conditions, pctx) {
			continue
		}
		matched = append(matched, st)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	for _, st := range matched {
		price *= st.Adjustments.PriceMultiplier
		commissionAdjustment += st.Adjustments.CommissionRateDelta

		// clamp locally, right after this strategy
		if st.Adjustments.MinPrice != nil && price < *st.Adjustments.MinPrice {
			price = *st.Adjustments.MinPrice
		}
		if st.Adjustments.MaxPrice != nil && price > *st.Adjustments.MaxPrice {
			price = *st.Adjustments.MaxPrice
		}

		applied = append(applied, st.StrategyID)
		StrategiesAppliedTotal.WithLabelValues(st.StrategyID).Inc()
	}

	if price < 0 {
		price = 0
	}

	return domain.PricingResult{
		FinalPrice:           round2(price),
		AppliedStrategyIDs:   applied,
		CommissionAdjustment: commissionAdjustment,
	}
}

func validNow(st domain.PricingStrategy, now time.Time) bool {
	if now.Before(st.ValidFrom) {
		return false
	}
	if st.ValidUntil != nil && now.After(*st.ValidUntil) {
		return false
	}
	return true
}

// valid rejects strategies whose adjustments cannot be applied safely.
func valid(st domain.PricingStrategy) bool {
	adj := st.Adjustments
	if adj.PriceMultiplier <= 0 {
		return false
	}
	if adj.MinPrice != nil && adj.MaxPrice != nil && *adj.MinPrice > *adj.MaxPrice {
		return false
	}
	return true
}

// matches checks every populated condition; an absent field constrains
// nothing.
func matches(c domain.StrategyConditions, pctx Context) bool {
	if c.MinLayoverMinutes != nil && pctx.LayoverMinutes < *c.MinLayoverMinutes {
		return false
	}
	if c.MaxLayoverMinutes != nil && pctx.LayoverMinutes > *c.MaxLayoverMinutes {
		return false
	}
	if len(c.WeatherCategories) > 0 && !slices.Contains(c.WeatherCategories, pctx.WeatherCategory) {
		return false
	}
	if len(c.UserTiers) > 0 && !slices.Contains(c.UserTiers, pctx.UserTier) {
		return false
	}
	if len(c.DestinationCodes) > 0 && !slices.Contains(c.DestinationCodes, pctx.DestinationCode) {
		return false
	}
	if len(c.ExperienceTypes) > 0 && !slices.Contains(c.ExperienceTypes, pctx.ExperienceType) {
		return false
	}
	return true
}
