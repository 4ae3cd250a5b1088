package router

import (
	"skyStop/internal/middleware"
	"skyStop/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetDiscoveryRoutes(api *echo.Group, handler *rest.DiscoveryHandler) {
	disc := api.Group("/discovery", middleware.AuthMiddleware())
	disc.GET("/experiences", handler.Recommend)
	disc.GET("/transit", handler.Transit)
}

func SetPricingAdminRoutes(api *echo.Group, handler *rest.PricingAdminHandler) {
	admin := api.Group("/admin/pricing", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/strategies", handler.GetStrategies)
	admin.PUT("/strategies", handler.UpsertStrategy)
	admin.GET("/tiers", handler.GetTiers)
	admin.PUT("/tiers", handler.UpsertTier)
}
