package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skyStop/app/echo-server/router"
	"skyStop/business/discovery"
	"skyStop/business/pricing"
	"skyStop/business/transit"
	"skyStop/business/weatherscore"
	"skyStop/internal/middleware"
	psqlRepo "skyStop/internal/repository/postgres"
	redisRepo "skyStop/internal/repository/redis"
	"skyStop/internal/repository/weatherapi"
	"skyStop/internal/rest"
	"skyStop/pkg/config"
	"skyStop/pkg/database"
	redisdb "skyStop/pkg/database/redis"
	"skyStop/pkg/logger"
	"skyStop/pkg/metrics"
	"skyStop/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SkyStop", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}()

	// Init repo
	expRepo := psqlRepo.NewExperienceRepository(db)
	strategyRepo := psqlRepo.NewStrategyRepository(db)
	tierRepo := psqlRepo.NewCommissionTierRepository(db)
	profileRepo := psqlRepo.NewUserProfileRepository(db)
	snapshotRepo := psqlRepo.NewRecommendationRepository(db)

	weatherCache := redisRepo.NewWeatherCache(redisClient, time.Duration(cfg.Weather.CacheTTLMin)*time.Minute)
	weatherRepo := weatherapi.NewWeatherRepository(
		weatherapi.WeatherAPIConfig{
			BaseURL: cfg.Weather.BaseURL,
			APIKey:  cfg.Weather.APIKey,
		},
		weatherCache,
	)

	// Init service
	transitService := transit.NewService(nil)
	weatherScorer := weatherscore.NewScorer(weatherscore.Config{})
	pricingEngine := pricing.NewEngine(1.0)

	discoveryService := discovery.NewService(
		transitService,
		weatherScorer,
		pricingEngine,
		weatherRepo,
		expRepo,
		strategyRepo,
		tierRepo,
		profileRepo,
		snapshotRepo,
		discovery.Config{
			MaxResults:     cfg.Discovery.MaxResults,
			WorkerCount:    cfg.Discovery.WorkerCount,
			RequestTimeout: time.Duration(cfg.Discovery.RequestTimeoutSec) * time.Second,
		},
	)

	// Init handler
	discoveryHandler := rest.NewDiscoveryHandler(discoveryService)
	pricingAdminHandler := rest.NewPricingAdminHandler(strategyRepo, tierRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.Discovery.RateLimitRPS, cfg.Discovery.RateLimitBurst)
	e.Use(rateLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetDiscoveryRoutes(api, discoveryHandler)
	router.SetPricingAdminRoutes(api, pricingAdminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
