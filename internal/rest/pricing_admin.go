package rest

import (
	"context"
	"net/http"

	"skyStop/domain"

	"github.com/labstack/echo/v4"
)

type (
	PricingAdminHandler struct {
		strategyRepo AdminStrategyRepository
		tierRepo     AdminCommissionTierRepository
	}

	AdminStrategyRepository interface {
		FindAll(ctx context.Context) ([]domain.PricingStrategy, error)
		Upsert(ctx context.Context, strategy domain.PricingStrategy) error
	}

	AdminCommissionTierRepository interface {
		TierTable(ctx context.Context) (map[string]float64, error)
		Upsert(ctx context.Context, tier domain.CommissionTier) error
	}
)

func NewPricingAdminHandler(
	strategyRepo AdminStrategyRepository,
	tierRepo AdminCommissionTierRepository,
) *PricingAdminHandler {
	return &PricingAdminHandler{
		strategyRepo: strategyRepo,
		tierRepo:     tierRepo,
	}
}

// GET /api/v1/admin/pricing/strategies
func (h *PricingAdminHandler) GetStrategies(c echo.Context) error {
	ctx := c.Request().Context()

	strategies, err := h.strategyRepo.FindAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, strategies)
}

// PUT /api/v1/admin/pricing/strategies
// body: PricingStrategy JSON
func (h *PricingAdminHandler) UpsertStrategy(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.PricingStrategy
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.StrategyID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "strategy_id is required",
		})
	}
	if body.Adjustments.PriceMultiplier <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "price_multiplier must be positive",
		})
	}

	if err := h.strategyRepo.Upsert(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// GET /api/v1/admin/pricing/tiers
func (h *PricingAdminHandler) GetTiers(c echo.Context) error {
	ctx := c.Request().Context()

	table, err := h.tierRepo.TierTable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, table)
}

// PUT /api/v1/admin/pricing/tiers
// body: { "tier": "gold", "base_rate": 0.20 }
func (h *PricingAdminHandler) UpsertTier(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.CommissionTier
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Tier == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tier is required",
		})
	}
	if body.BaseRate <= 0 || body.BaseRate > 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "base_rate must be in (0, 1]",
		})
	}

	if err := h.tierRepo.Upsert(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
