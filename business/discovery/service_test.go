//go:build !integration

package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"skyStop/business/pricing"
	"skyStop/business/transit"
	"skyStop/business/weatherscore"
	"skyStop/domain"
)

type stubExpRepo struct {
	exps []domain.Experience
	err  error
}

func (s stubExpRepo) FindByDestination(_ context.Context, _ string) ([]domain.Experience, error) {
	return s.exps, s.err
}

type stubStrategyRepo struct {
	strategies []domain.PricingStrategy
	err        error
}

func (s stubStrategyRepo) FindActive(_ context.Context) ([]domain.PricingStrategy, error) {
	return s.strategies, s.err
}

type stubTierRepo struct {
	table map[string]float64
	err   error
}

func (s stubTierRepo) TierTable(_ context.Context) (map[string]float64, error) {
	return s.table, s.err
}

type stubProfileRepo struct {
	profile domain.UserProfile
	ok      bool
}

func (s stubProfileRepo) GetByUserID(_ context.Context, _ uint) (domain.UserProfile, bool, error) {
	return s.profile, s.ok, nil
}

type stubSnapshotRepo struct {
	saved []domain.RecommendationSnapshot
}

func (s *stubSnapshotRepo) Save(_ context.Context, snap domain.RecommendationSnapshot) error {
	s.saved = append(s.saved, snap)
	return nil
}

type stubWeather struct {
	snap domain.WeatherSnapshot
	err  error
}

func (s stubWeather) Current(_ context.Context, _ string) (domain.WeatherSnapshot, error) {
	return s.snap, s.err
}

func testCatalog() []domain.Experience {
	rated := 4.5
	return []domain.Experience{
		{
			ExperienceID: "city-tour", Title: "City Tour", DestinationCode: "SIN",
			Categories: []string{"tour"}, DurationMinutes: 120, BasePrice: 60,
			ActivityType: domain.ActivityOutdoor, WeatherDependency: domain.WeatherDepMedium,
			PhysicalDemand: domain.DemandModerate, RatingAvg: &rated, RatingCount: 80,
		},
		{
			ExperienceID: "food-walk", Title: "Hawker Food Walk", DestinationCode: "SIN",
			Categories: []string{"culinary"}, DurationMinutes: 90, BasePrice: 45,
			ActivityType: domain.ActivityMixed, WeatherDependency: domain.WeatherDepLow,
			PhysicalDemand: domain.DemandLow, RatingAvg: &rated, RatingCount: 150,
		},
		{
			ExperienceID: "art-museum", Title: "Art Museum", DestinationCode: "SIN",
			Categories: []string{"museum"}, DurationMinutes: 100, BasePrice: 25,
			ActivityType: domain.ActivityIndoor, WeatherDependency: domain.WeatherDepNone,
			PhysicalDemand: domain.DemandLow, RatingCount: 10,
		},
	}
}

func testService(expRepo ExperienceRepository, weather WeatherProvider, snapRepo SnapshotRepository) *Service {
	return NewService(
		transit.NewService(nil),
		weatherscore.NewScorer(weatherscore.Config{}),
		pricing.NewEngine(1.0),
		weather,
		expRepo,
		stubStrategyRepo{},
		stubTierRepo{table: pricing.DefaultTierTable()},
		stubProfileRepo{},
		snapRepo,
		Config{},
	)
}

func testRequest() Request {
	arrival := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return Request{
		UserID:        42,
		AirportCode:   "SIN",
		ArrivalTime:   arrival,
		DepartureTime: arrival.Add(8 * time.Hour),
	}
}

func TestRecommend_HappyPath(t *testing.T) {
	snapRepo := &stubSnapshotRepo{}
	svc := testService(
		stubExpRepo{exps: testCatalog()},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		snapRepo,
	)

	set, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Recommendations) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(set.Recommendations))
	}
	if set.SetID == "" {
		t.Error("set id must be assigned")
	}
	if !set.Transit.CanLeaveAirport {
		t.Error("an 8 hour layover at a known hub should be feasible")
	}

	for i := 1; i < len(set.Recommendations); i++ {
		if set.Recommendations[i-1].Score < set.Recommendations[i].Score {
			t.Error("recommendations must be sorted by score descending")
		}
	}

	for _, r := range set.Recommendations {
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("score %v out of range", r.Score)
		}
		if r.DynamicPrice != r.Experience.BasePrice {
			t.Errorf("with no strategies, price %v must equal base %v", r.DynamicPrice, r.Experience.BasePrice)
		}
		if r.CommissionRate < pricing.MinCommissionRate || r.CommissionRate > pricing.MaxCommissionRate {
			t.Errorf("commission rate %v out of bounds", r.CommissionRate)
		}
		if len(r.Explanations) == 0 {
			t.Error("every recommendation needs explanations")
		}
	}

	if set.Summary.TotalCandidates != 3 || set.Summary.ReturnedCount != 3 {
		t.Errorf("summary counts = %d/%d, want 3/3", set.Summary.TotalCandidates, set.Summary.ReturnedCount)
	}

	if len(snapRepo.saved) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snapRepo.saved))
	}
	if snapRepo.saved[0].UserID != 42 || snapRepo.saved[0].SetID != set.SetID {
		t.Error("snapshot must carry the served set id and user")
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	svc := testService(
		stubExpRepo{exps: testCatalog()},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	first, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Recommendations) != len(second.Recommendations) {
		t.Fatal("same request must return the same number of results")
	}
	for i := range first.Recommendations {
		a, b := first.Recommendations[i], second.Recommendations[i]
		if a.Experience.ExperienceID != b.Experience.ExperienceID || a.Score != b.Score {
			t.Errorf("position %d differs: %s/%v vs %s/%v",
				i, a.Experience.ExperienceID, a.Score, b.Experience.ExperienceID, b.Score)
		}
	}
}

func TestRecommend_WeatherFallback(t *testing.T) {
	svc := testService(
		stubExpRepo{exps: testCatalog()},
		stubWeather{err: errors.New("provider down")},
		&stubSnapshotRepo{},
	)

	set, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("weather outage must not fail the request: %v", err)
	}

	if set.Weather.GoodForOutdoor {
		t.Error("fallback weather must be conservative about outdoor activities")
	}
	if len(set.Recommendations) == 0 {
		t.Error("recommendations must still be served on fallback weather")
	}
}

func TestRecommend_CatalogErrorIsFatal(t *testing.T) {
	svc := testService(
		stubExpRepo{err: errors.New("db down")},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	if _, err := svc.Recommend(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error when the catalog is unavailable")
	}
}

func TestRecommend_InvalidWindow(t *testing.T) {
	svc := testService(stubExpRepo{}, stubWeather{}, &stubSnapshotRepo{})

	req := testRequest()
	req.DepartureTime = req.ArrivalTime.Add(-time.Hour)

	if _, err := svc.Recommend(context.Background(), req); err == nil {
		t.Fatal("expected error for departure before arrival")
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	svc := testService(
		stubExpRepo{},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	set, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(set.Recommendations))
	}
	if set.Summary.TotalCandidates != 0 {
		t.Errorf("total candidates = %d, want 0", set.Summary.TotalCandidates)
	}
}

func TestRecommend_LimitHonored(t *testing.T) {
	svc := testService(
		stubExpRepo{exps: testCatalog()},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	req := testRequest()
	req.Limit = 1

	set, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Recommendations) != 1 {
		t.Errorf("recommendations = %d, want 1", len(set.Recommendations))
	}
}

func TestRecommend_InfeasibleLayoverReturnsEmptySet(t *testing.T) {
	svc := testService(
		stubExpRepo{exps: testCatalog()},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	req := testRequest()
	req.DepartureTime = req.ArrivalTime.Add(2 * time.Hour)

	set, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("an infeasible layover is a valid result, not an error: %v", err)
	}
	if set.Transit.CanLeaveAirport {
		t.Error("a 2 hour layover must not allow leaving the airport")
	}
	if len(set.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0 when nothing fits", len(set.Recommendations))
	}
	if set.Summary.TotalCandidates != 3 {
		t.Errorf("total candidates = %d, want 3 considered", set.Summary.TotalCandidates)
	}
}

func TestRecommend_ExcludesExperiencesThatDoNotFit(t *testing.T) {
	catalog := testCatalog()
	catalog = append(catalog, domain.Experience{
		ExperienceID: "day-trip", Title: "Full Day Trip", DestinationCode: "SIN",
		Categories: []string{"tour"}, DurationMinutes: 600, BasePrice: 200,
		ActivityType: domain.ActivityOutdoor, WeatherDependency: domain.WeatherDepMedium,
		PhysicalDemand: domain.DemandHigh,
	})

	svc := testService(
		stubExpRepo{exps: catalog},
		stubWeather{snap: domain.WeatherSnapshot{TemperatureC: 24, VisibilityKM: 10, GoodForOutdoor: true}},
		&stubSnapshotRepo{},
	)

	set, err := svc.Recommend(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range set.Recommendations {
		if r.Experience.ExperienceID == "day-trip" {
			t.Error("a 600 minute experience cannot fit an 8 hour layover's city time")
		}
	}
}

func TestTransit_ShortLayover(t *testing.T) {
	svc := testService(stubExpRepo{}, stubWeather{}, &stubSnapshotRepo{})

	req := testRequest()
	req.DepartureTime = req.ArrivalTime.Add(90 * time.Minute)

	analysis, err := svc.Transit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.CanLeaveAirport {
		t.Error("a 90 minute layover must not allow leaving the airport")
	}
}
