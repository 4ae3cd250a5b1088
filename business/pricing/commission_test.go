//go:build !integration

package pricing

import (
	"testing"
	"time"

	"skyStop/domain"
)

func TestCalculate_GoldTier(t *testing.T) {
	c := NewCommissionCalculator(nil)

	got := c.Calculate(125, domain.TierGold, 0)

	if got.CommissionRate != 0.20 {
		t.Errorf("rate = %v, want 0.20", got.CommissionRate)
	}
	if got.CommissionAmount != 25 {
		t.Errorf("amount = %v, want 25", got.CommissionAmount)
	}
	if got.PartnerPayout != 100 {
		t.Errorf("payout = %v, want 100", got.PartnerPayout)
	}
	if got.PlatformRevenue != got.CommissionAmount {
		t.Errorf("platform revenue = %v, want %v", got.PlatformRevenue, got.CommissionAmount)
	}
	if got.FallbackApplied {
		t.Error("fallback must not apply for a known tier")
	}
}

func TestCalculate_RateClampedHigh(t *testing.T) {
	c := NewCommissionCalculator(nil)

	got := c.Calculate(100, domain.TierBronze, 0.20)

	if got.CommissionRate != MaxCommissionRate {
		t.Errorf("rate = %v, want clamped to %v", got.CommissionRate, MaxCommissionRate)
	}
}

func TestCalculate_RateClampedLow(t *testing.T) {
	c := NewCommissionCalculator(nil)

	got := c.Calculate(100, domain.TierEnterprise, -0.20)

	if got.CommissionRate != MinCommissionRate {
		t.Errorf("rate = %v, want clamped to %v", got.CommissionRate, MinCommissionRate)
	}
}

func TestCalculate_UnknownTierFallsBackToBronze(t *testing.T) {
	c := NewCommissionCalculator(nil)

	got := c.Calculate(100, "diamond", 0)

	if !got.FallbackApplied {
		t.Fatal("expected fallback for unknown tier")
	}
	if got.CommissionRate != 0.25 {
		t.Errorf("rate = %v, want bronze 0.25", got.CommissionRate)
	}
}

func TestCalculate_RoundingHalfUp(t *testing.T) {
	c := NewCommissionCalculator(map[string]float64{"flat": 0.15})

	// 33.35 * 0.15 = 5.0025 -> 5.00; payout 33.35 - 5.00 = 28.35
	got := c.Calculate(33.35, "flat", 0)

	if got.CommissionAmount != 5.00 {
		t.Errorf("amount = %v, want 5.00", got.CommissionAmount)
	}
	if got.PartnerPayout != 28.35 {
		t.Errorf("payout = %v, want 28.35", got.PartnerPayout)
	}
}

// End-to-end: one strategy with multiplier 1.25 and commission delta +0.02 on
// a $100 base at a 0.17 tier rate.
func TestEngineAndCommission_Combined(t *testing.T) {
	e := NewEngine(1.0)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	peak := domain.PricingStrategy{
		StrategyID: "peak-season",
		Priority:   10,
		Active:     true,
		ValidFrom:  now.Add(-time.Hour),
		Adjustments: domain.StrategyAdjustments{
			PriceMultiplier:     1.25,
			CommissionRateDelta: 0.02,
		},
	}

	priced := e.Apply(100, Context{Now: now, UserTier: domain.TierPlatinum}, []domain.PricingStrategy{peak})
	if priced.FinalPrice != 125 {
		t.Fatalf("final price = %v, want 125", priced.FinalPrice)
	}

	c := NewCommissionCalculator(map[string]float64{domain.TierPlatinum: 0.17})
	got := c.Calculate(priced.FinalPrice, domain.TierPlatinum, priced.CommissionAdjustment)

	if diff := got.CommissionRate - 0.19; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("rate = %v, want 0.19", got.CommissionRate)
	}
	if got.CommissionAmount != 23.75 {
		t.Errorf("amount = %v, want 23.75", got.CommissionAmount)
	}
	if got.PartnerPayout != 101.25 {
		t.Errorf("payout = %v, want 101.25", got.PartnerPayout)
	}
}

func TestCalculate_NegativePriceTreatedAsZero(t *testing.T) {
	c := NewCommissionCalculator(nil)

	got := c.Calculate(-10, domain.TierSilver, 0)

	if got.CommissionAmount != 0 || got.PartnerPayout != 0 {
		t.Errorf("amount = %v payout = %v, want zeros", got.CommissionAmount, got.PartnerPayout)
	}
}

func TestCalculate_CustomTableMissingBronze(t *testing.T) {
	c := NewCommissionCalculator(map[string]float64{domain.TierGold: 0.18})

	got := c.Calculate(100, "unknown", 0)

	if !got.FallbackApplied {
		t.Fatal("expected fallback")
	}
	// table has no bronze entry either, hard default kicks in
	if got.CommissionRate != 0.25 {
		t.Errorf("rate = %v, want hard default 0.25", got.CommissionRate)
	}
}
