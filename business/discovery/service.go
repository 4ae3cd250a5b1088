package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"skyStop/business/pricing"
	"skyStop/business/transit"
	"skyStop/business/weatherscore"
	"skyStop/domain"
	"skyStop/pkg/logger"
	"skyStop/pkg/metrics"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type ExperienceRepository interface {
	FindByDestination(ctx context.Context, destinationCode string) ([]domain.Experience, error)
}

type StrategyRepository interface {
	FindActive(ctx context.Context) ([]domain.PricingStrategy, error)
}

type CommissionTierRepository interface {
	TierTable(ctx context.Context) (map[string]float64, error)
}

type UserProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (domain.UserProfile, bool, error)
}

// SnapshotRepository persists served sets for the dashboard layer. Writes
// are best-effort; a failure never fails the request.
type SnapshotRepository interface {
	Save(ctx context.Context, snap domain.RecommendationSnapshot) error
}

// WeatherProvider returns the current snapshot for a destination. The
// pipeline degrades to a conservative snapshot when it fails.
type WeatherProvider interface {
	Current(ctx context.Context, cityName string) (domain.WeatherSnapshot, error)
}

// ---- Config ----

type Config struct {
	MaxResults     int
	WorkerCount    int
	RequestTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxResults:     10,
		WorkerCount:    8,
		RequestTimeout: 5 * time.Second,
	}
}

// ---- Service ----

type Service struct {
	transitSvc   *transit.Service
	scorer       *weatherscore.Scorer
	engine       *pricing.Engine
	weather      WeatherProvider
	expRepo      ExperienceRepository
	strategyRepo StrategyRepository
	tierRepo     CommissionTierRepository
	profileRepo  UserProfileRepository
	snapshotRepo SnapshotRepository
	ranker       *Ranker
	cfg          Config
}

func NewService(
	transitSvc *transit.Service,
	scorer *weatherscore.Scorer,
	engine *pricing.Engine,
	weather WeatherProvider,
	expRepo ExperienceRepository,
	strategyRepo StrategyRepository,
	tierRepo CommissionTierRepository,
	profileRepo UserProfileRepository,
	snapshotRepo SnapshotRepository,
	cfg Config,
) *Service {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultConfig().MaxResults
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultConfig().WorkerCount
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}

	return &Service{
		transitSvc:   transitSvc,
		scorer:       scorer,
		engine:       engine,
		weather:      weather,
		expRepo:      expRepo,
		strategyRepo: strategyRepo,
		tierRepo:     tierRepo,
		profileRepo:  profileRepo,
		snapshotRepo: snapshotRepo,
		ranker:       NewRanker(BaseWeights()),
		cfg:          cfg,
	}
}

// Request describes one discovery call.
type Request struct {
	UserID            uint
	AirportCode       string
	ArrivalTime       time.Time
	DepartureTime     time.Time
	HasCheckedBaggage bool
	Limit             int
}

func (r Request) validate() error {
	if r.AirportCode == "" {
		return errors.New("airport code is required")
	}
	if !r.DepartureTime.After(r.ArrivalTime) {
		return errors.New("departure time must be after arrival time")
	}
	return nil
}

// Transit exposes the feasibility analysis on its own, used to advise
// travelers before they book anything.
func (s *Service) Transit(ctx context.Context, req Request) (domain.TransitAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.TransitAnalysis{}, fmt.Errorf("context error: %w", err)
	}
	if err := req.validate(); err != nil {
		return domain.TransitAnalysis{}, err
	}

	layoverMinutes := int(req.DepartureTime.Sub(req.ArrivalTime).Minutes())
	return s.transitSvc.Analyze(ctx, req.AirportCode, layoverMinutes, req.ArrivalTime, req.HasCheckedBaggage), nil
}

// Recommend runs the full discovery pipeline: feasibility, weather, parallel
// per-candidate scoring and pricing, ranking with diversity, and summary.
func (s *Service) Recommend(ctx context.Context, req Request) (domain.RecommendationSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("context error: %w", err)
	}
	if err := req.validate(); err != nil {
		return domain.RecommendationSet{}, err
	}

	metrics.DiscoveryRequests.Inc()
	started := time.Now()
	defer func() {
		metrics.DiscoveryLatency.Observe(time.Since(started).Seconds())
	}()

	limit := req.Limit
	if limit <= 0 || limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}

	layoverMinutes := int(req.DepartureTime.Sub(req.ArrivalTime).Minutes())

	// 1) airport + transit feasibility, never fails
	profile := s.transitSvc.Profile(ctx, req.AirportCode)
	analysis := transit.Analyze(profile, layoverMinutes, req.ArrivalTime, req.HasCheckedBaggage)

	layover := domain.LayoverContext{
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		AirportCode:   req.AirportCode,
		City: domain.DestinationCity{
			Name:         profile.CityName,
			Country:      profile.Country,
			Timezone:     profile.Timezone,
			SafetyRating: profile.SafetyRating,
		},
		DurationMinutes: layoverMinutes,
	}

	// 2) weather snapshot, degrade to a conservative one on failure
	weather, err := s.weather.Current(ctx, layover.City.Name)
	if err != nil {
		logger.Warn("weather unavailable, using conservative fallback",
			"city", layover.City.Name,
			"error", err,
		)
		metrics.WeatherFallbacks.Inc()
		weather = fallbackWeather()
	}

	// 3) traveler profile, neutral default when unknown
	userProfile := s.loadProfile(ctx, req.UserID)

	// 4) pricing configuration, baseline on failure
	strategies := s.loadStrategies(ctx)
	tierTable := s.loadTierTable(ctx)

	// 5) candidate catalog; this one is a hard dependency
	candidates, err := s.expRepo.FindByDestination(ctx, req.AirportCode)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("load experience catalog: %w", err)
	}

	set := domain.RecommendationSet{
		SetID:           uuid.NewString(),
		AirportCode:     req.AirportCode,
		GeneratedAt:     time.Now().UTC(),
		Layover:         layover,
		Transit:         analysis,
		Weather:         weather,
		Recommendations: []domain.RankedRecommendation{},
	}

	fitting := fittingCandidates(candidates, analysis)
	if len(fitting) == 0 {
		set.Summary = buildSummary(nil, len(candidates), layover)
		return set, nil
	}

	// 6) score candidates in parallel, rank, diversify
	scored := s.scoreAll(ctx, fitting, layover, analysis, weather, userProfile, strategies, tierTable)
	set.Recommendations = s.ranker.Rank(scored, limit)
	set.Summary = buildSummary(set.Recommendations, len(candidates), layover)

	s.persistSnapshot(ctx, req.UserID, set)

	logger.Debug("discovery served",
		"set_id", set.SetID,
		"airport", req.AirportCode,
		"candidates", len(candidates),
		"scored", len(scored),
		"returned", len(set.Recommendations),
		"can_leave_airport", analysis.CanLeaveAirport,
	)

	return set, nil
}

// fittingCandidates drops experiences that cannot fit in the available city
// time. On an infeasible layover this empties the batch, so the response is
// a valid empty set rather than an error. Flexible-duration experiences fit
// as long as any city time exists.
func fittingCandidates(candidates []domain.Experience, analysis domain.TransitAnalysis) []domain.Experience {
	avail := analysis.AvailableTimeInCityMinutes
	if avail <= 0 {
		return nil
	}

	out := make([]domain.Experience, 0, len(candidates))
	for _, c := range candidates {
		if c.DurationMinutes <= avail || c.FlexibleDuration {
			out = append(out, c)
		}
	}
	return out
}

// scoreAll fans candidates out over a bounded worker pool and collects the
// results. Candidates that fail are dropped; candidates not scored before
// the per-request timeout are excluded, not retried.
func (s *Service) scoreAll(
	ctx context.Context,
	candidates []domain.Experience,
	layover domain.LayoverContext,
	analysis domain.TransitAnalysis,
	weather domain.WeatherSnapshot,
	userProfile domain.UserProfile,
	strategies []domain.PricingStrategy,
	tierTable map[string]float64,
) []domain.RankedRecommendation {
	scoreCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	type candidateResult struct {
		rec domain.RankedRecommendation
		err error
	}

	workers := s.cfg.WorkerCount
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan domain.Experience)
	results := make(chan candidateResult, len(candidates))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for exp := range jobs {
				rec, err := s.scoreCandidate(exp, layover, analysis, weather, userProfile, strategies, tierTable)
				results <- candidateResult{rec: rec, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, c := range candidates {
			select {
			case jobs <- c:
			case <-scoreCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	scored := make([]domain.RankedRecommendation, 0, len(candidates))
collect:
	for {
		select {
		case r, ok := <-results:
			if !ok {
				break collect
			}
			if r.err != nil {
				logger.Error("candidate scoring failed, dropping candidate", "error", r.err)
				metrics.CandidatesDropped.Inc()
				continue
			}
			scored = append(scored, r.rec)
		case <-scoreCtx.Done():
			logger.Warn("scoring deadline reached, excluding unscored candidates",
				"scored", len(scored),
				"total", len(candidates),
			)
			break collect
		}
	}

	return scored
}

// scoreCandidate runs stages 2-4 of the pipeline for one candidate. A panic
// anywhere in the scoring chain is converted into an error so a single bad
// candidate cannot take down the batch.
func (s *Service) scoreCandidate(
	exp domain.Experience,
	layover domain.LayoverContext,
	analysis domain.TransitAnalysis,
	weather domain.WeatherSnapshot,
	userProfile domain.UserProfile,
	strategies []domain.PricingStrategy,
	tierTable map[string]float64,
) (rec domain.RankedRecommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring panicked for experience %s: %v", exp.ExperienceID, r)
		}
	}()

	weatherScore := s.scorer.Score(exp, weather)

	priced := s.engine.Apply(exp.BasePrice, pricing.Context{
		LayoverMinutes:  layover.DurationMinutes,
		WeatherCategory: weather.Category(),
		UserTier:        userProfile.LoyaltyTier,
		DestinationCode: layover.AirportCode,
		ExperienceType:  exp.ActivityType,
		Now:             layover.ArrivalTime,
	}, strategies)

	commission := pricing.NewCommissionCalculator(tierTable).
		Calculate(priced.FinalPrice, userProfile.LoyaltyTier, priced.CommissionAdjustment)

	applied := priced.AppliedStrategyIDs
	if commission.FallbackApplied {
		applied = append(applied, "fallback")
	}

	factors := buildFactors(exp, layover, analysis, weather, weatherScore, userProfile, priced.FinalPrice, commission)
	score := s.ranker.Combine(factors, userProfile)

	rec = domain.RankedRecommendation{
		Experience:         exp,
		Factors:            factors,
		Score:              score,
		DynamicPrice:       priced.FinalPrice,
		CommissionRate:     commission.CommissionRate,
		CommissionAmount:   commission.CommissionAmount,
		PartnerPayout:      commission.PartnerPayout,
		AppliedStrategyIDs: applied,
		Explanations:       explanations(exp, analysis, weatherScore, factors, applied),
		WeatherWarnings:    weatherScore.Warnings,
	}

	return rec, nil
}

func (s *Service) loadProfile(ctx context.Context, userID uint) domain.UserProfile {
	if s.profileRepo != nil {
		if p, ok, err := s.profileRepo.GetByUserID(ctx, userID); err == nil && ok {
			return p
		}
	}
	return domain.DefaultProfile(userID)
}

func (s *Service) loadStrategies(ctx context.Context) []domain.PricingStrategy {
	if s.strategyRepo == nil {
		return nil
	}
	strategies, err := s.strategyRepo.FindActive(ctx)
	if err != nil {
		logger.Error("failed to load pricing strategies, using baseline pricing", "error", err)
		return nil
	}
	return strategies
}

func (s *Service) loadTierTable(ctx context.Context) map[string]float64 {
	if s.tierRepo == nil {
		return pricing.DefaultTierTable()
	}
	table, err := s.tierRepo.TierTable(ctx)
	if err != nil || len(table) == 0 {
		if err != nil {
			logger.Error("failed to load commission tiers, using defaults", "error", err)
		}
		return pricing.DefaultTierTable()
	}
	return table
}

func (s *Service) persistSnapshot(ctx context.Context, userID uint, set domain.RecommendationSet) {
	if s.snapshotRepo == nil {
		return
	}

	payload, err := json.Marshal(set)
	if err != nil {
		logger.Error("failed to marshal recommendation snapshot", "set_id", set.SetID, "error", err)
		return
	}

	snap := domain.RecommendationSnapshot{
		SetID:       set.SetID,
		UserID:      userID,
		AirportCode: set.AirportCode,
		Payload:     payload,
	}

	if err := s.snapshotRepo.Save(ctx, snap); err != nil {
		logger.Error("failed to persist recommendation snapshot", "set_id", set.SetID, "error", err)
	}
}

// fallbackWeather is the neutral, unfavorable-leaning snapshot used when the
// provider is unavailable: mild but flagged not good for outdoor use so
// weather-critical candidates are not over-recommended.
func fallbackWeather() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		TemperatureC:     18,
		PrecipitationMMH: 2.0,
		WindSpeedKMH:     20,
		VisibilityKM:     8,
		GoodForOutdoor:   false,
	}
}

func explanations(
	exp domain.Experience,
	analysis domain.TransitAnalysis,
	weatherScore domain.WeatherScore,
	factors domain.ScoringFactors,
	applied []string,
) []string {
	out := make([]string, 0, 4)

	out = append(out, fmt.Sprintf("%d min experience with about %d min available in the city",
		exp.DurationMinutes, analysis.AvailableTimeInCityMinutes))
	out = append(out, weatherScore.Recommendation)

	if factors.PersonalizedPreference >= 0.7 {
		out = append(out, "matches your interests")
	}
	if n := len(applied); n > 0 {
		out = append(out, fmt.Sprintf("price reflects %d active pricing adjustment(s)", n))
	}

	return out
}
