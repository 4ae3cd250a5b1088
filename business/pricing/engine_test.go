//go:build !integration

package pricing

import (
	"testing"
	"time"

	"skyStop/domain"
)

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func pctxAt(now time.Time) Context {
	return Context{
		LayoverMinutes:  360,
		WeatherCategory: "clear",
		UserTier:        domain.TierGold,
		DestinationCode: "SIN",
		ExperienceType:  domain.ActivityOutdoor,
		Now:             now,
	}
}

func strategy(id string, priority int, mult float64) domain.PricingStrategy {
	return domain.PricingStrategy{
		StrategyID: id,
		Priority:   priority,
		Active:     true,
		ValidFrom:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Adjustments: domain.StrategyAdjustments{
			PriceMultiplier: mult,
		},
	}
}

func TestApply_NoStrategiesIsIdentity(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := e.Apply(100, pctxAt(now), nil)

	if got.FinalPrice != 100 {
		t.Errorf("final price = %v, want 100", got.FinalPrice)
	}
	if len(got.AppliedStrategyIDs) != 0 {
		t.Errorf("applied = %v, want empty", got.AppliedStrategyIDs)
	}
	if got.CommissionAdjustment != 0 {
		t.Errorf("commission adjustment = %v, want 0", got.CommissionAdjustment)
	}
}

func TestApply_SingleMultiplier(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{
		strategy("peak", 10, 1.25),
	})

	if got.FinalPrice != 125 {
		t.Errorf("final price = %v, want 125", got.FinalPrice)
	}
	if len(got.AppliedStrategyIDs) != 1 || got.AppliedStrategyIDs[0] != "peak" {
		t.Errorf("applied = %v, want [peak]", got.AppliedStrategyIDs)
	}
}

func TestApply_PriorityOrderAndLocalClamp(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// high priority doubles and clamps to 150; low priority then still
	// multiplies the clamped price past the earlier bound
	high := strategy("double-capped", 20, 2.0)
	high.Adjustments.MaxPrice = floatPtr(150)
	low := strategy("late-markup", 10, 1.2)

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{low, high})

	// 100*2 = 200 -> clamp 150 -> *1.2 = 180
	if got.FinalPrice != 180 {
		t.Errorf("final price = %v, want 180", got.FinalPrice)
	}
	if len(got.AppliedStrategyIDs) != 2 || got.AppliedStrategyIDs[0] != "double-capped" {
		t.Errorf("applied = %v, want high priority first", got.AppliedStrategyIDs)
	}
}

func TestApply_MinPriceClampIsImmediate(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	discount := strategy("discount-floored", 20, 0.5)
	discount.Adjustments.MinPrice = floatPtr(80)

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{discount})

	if got.FinalPrice != 80 {
		t.Errorf("final price = %v, want floor 80", got.FinalPrice)
	}
}

func TestApply_ValidityWindow(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	expired := strategy("expired", 10, 1.5)
	expired.ValidUntil = timePtr(now.Add(-time.Hour))

	future := strategy("future", 10, 1.5)
	future.ValidFrom = now.Add(time.Hour)

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{expired, future})

	if got.FinalPrice != 100 {
		t.Errorf("final price = %v, want 100 with no valid strategies", got.FinalPrice)
	}
}

func TestApply_ConditionMatching(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	longLayover := strategy("long-layover", 10, 1.1)
	longLayover.Conditions = domain.StrategyConditions{
		MinLayoverMinutes: intPtr(480),
	}

	rainOnly := strategy("rain-only", 10, 0.9)
	rainOnly.Conditions = domain.StrategyConditions{
		WeatherCategories: []string{"rain"},
	}

	goldPerk := strategy("gold-perk", 10, 0.95)
	goldPerk.Conditions = domain.StrategyConditions{
		UserTiers: []string{domain.TierGold, domain.TierPlatinum},
	}

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{longLayover, rainOnly, goldPerk})

	// only gold-perk matches a 360 min clear-weather gold request
	if len(got.AppliedStrategyIDs) != 1 || got.AppliedStrategyIDs[0] != "gold-perk" {
		t.Fatalf("applied = %v, want [gold-perk]", got.AppliedStrategyIDs)
	}
	if got.FinalPrice != 95 {
		t.Errorf("final price = %v, want 95", got.FinalPrice)
	}
}

func TestApply_InvalidStrategySkipped(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	broken := strategy("broken", 10, 0)
	inverted := strategy("inverted-bounds", 10, 1.1)
	inverted.Adjustments.MinPrice = floatPtr(200)
	inverted.Adjustments.MaxPrice = floatPtr(100)

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{broken, inverted})

	if got.FinalPrice != 100 {
		t.Errorf("final price = %v, want 100 with only invalid strategies", got.FinalPrice)
	}
	if len(got.AppliedStrategyIDs) != 0 {
		t.Errorf("applied = %v, want empty", got.AppliedStrategyIDs)
	}
}

func TestApply_CommissionAdjustmentAccumulates(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	a := strategy("a", 20, 1.0)
	a.Adjustments.CommissionRateDelta = 0.03
	b := strategy("b", 10, 1.0)
	b.Adjustments.CommissionRateDelta = -0.01

	got := e.Apply(100, pctxAt(now), []domain.PricingStrategy{a, b})

	if diff := got.CommissionAdjustment - 0.02; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("commission adjustment = %v, want 0.02", got.CommissionAdjustment)
	}
}

func TestApply_BaseMarkup(t *testing.T) {
	e := NewEngine(1.1)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got := e.Apply(100, pctxAt(now), nil)
	if got.FinalPrice != 110 {
		t.Errorf("final price = %v, want 110 with 1.1 markup", got.FinalPrice)
	}
}

func TestApply_PriceNeverNegative(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	crash := strategy("crash", 10, 0.0001)
	got := e.Apply(0.01, pctxAt(now), []domain.PricingStrategy{crash})

	if got.FinalPrice < 0 {
		t.Errorf("final price = %v, must not be negative", got.FinalPrice)
	}
}
