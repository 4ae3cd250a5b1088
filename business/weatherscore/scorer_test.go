//go:build !integration

package weatherscore

import (
	"testing"

	"skyStop/domain"
)

func goodWeather() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		TemperatureC:     21,
		PrecipitationMMH: 0,
		WindSpeedKMH:     10,
		VisibilityKM:     10,
		GoodForOutdoor:   true,
	}
}

func badWeather() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		TemperatureC:     4,
		PrecipitationMMH: 8,
		WindSpeedKMH:     50,
		VisibilityKM:     1,
		GoodForOutdoor:   false,
	}
}

func outdoorExperience(dep string) domain.Experience {
	return domain.Experience{
		ExperienceID:      "exp-outdoor",
		ActivityType:      domain.ActivityOutdoor,
		WeatherDependency: dep,
	}
}

func TestScore_OptimalConditionsOutdoor(t *testing.T) {
	s := NewScorer(Config{})

	got := s.Score(outdoorExperience(domain.WeatherDepMedium), goodWeather())

	if got.Score < 0.9 {
		t.Errorf("score = %v, want near 1.0 in optimal conditions", got.Score)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", got.Warnings)
	}
}

func TestScore_WeatherCriticalOutdoorCapped(t *testing.T) {
	s := NewScorer(Config{})

	got := s.Score(outdoorExperience(domain.WeatherDepHigh), badWeather())

	if got.Score > 0.3 {
		t.Errorf("score = %v, want <= 0.3 for weather-critical activity in bad weather", got.Score)
	}
	if len(got.Warnings) == 0 {
		t.Error("expected at least one warning")
	}
}

func TestScore_IndoorGainsInBadWeather(t *testing.T) {
	s := NewScorer(Config{})

	indoor := domain.Experience{
		ExperienceID:      "exp-indoor",
		ActivityType:      domain.ActivityIndoor,
		WeatherDependency: domain.WeatherDepNone,
	}

	inGood := s.Score(indoor, goodWeather())
	inBad := s.Score(indoor, badWeather())

	if inBad.Score <= 0 {
		t.Fatalf("indoor score in bad weather = %v, want > 0", inBad.Score)
	}

	// indoor activities ignore precipitation/wind penalties, so the bonus
	// dominates; visibility is the only shared penalty
	if inBad.Score >= 1.0001 || inGood.Score >= 1.0001 {
		t.Errorf("scores must stay within [0,1]: good=%v bad=%v", inGood.Score, inBad.Score)
	}
	if len(inBad.Warnings) != 0 {
		t.Errorf("indoor activity should not carry outdoor warnings, got %v", inBad.Warnings)
	}
}

func TestScore_TemperatureDecay(t *testing.T) {
	s := NewScorer(Config{})
	exp := outdoorExperience(domain.WeatherDepLow)

	mild := goodWeather()
	cold := goodWeather()
	cold.TemperatureC = 5

	mildScore := s.Score(exp, mild)
	coldScore := s.Score(exp, cold)

	if coldScore.Score >= mildScore.Score {
		t.Errorf("cold score %v should be below mild score %v", coldScore.Score, mildScore.Score)
	}
}

func TestScore_RainWarningForOutdoor(t *testing.T) {
	s := NewScorer(Config{})

	wet := goodWeather()
	wet.PrecipitationMMH = 5
	wet.GoodForOutdoor = false

	got := s.Score(outdoorExperience(domain.WeatherDepLow), wet)

	found := false
	for _, w := range got.Warnings {
		if w == "rain expected" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected rain warning, got %v", got.Warnings)
	}
}

func TestScore_MixedCountsAsExposed(t *testing.T) {
	s := NewScorer(Config{})

	mixed := domain.Experience{
		ExperienceID:      "exp-mixed",
		ActivityType:      domain.ActivityMixed,
		WeatherDependency: domain.WeatherDepHigh,
	}

	got := s.Score(mixed, badWeather())
	if got.Score > 0.3 {
		t.Errorf("mixed weather-critical score = %v, want capped at 0.3", got.Score)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	s := NewScorer(Config{})

	snaps := []domain.WeatherSnapshot{
		goodWeather(),
		badWeather(),
		{TemperatureC: -20, PrecipitationMMH: 30, WindSpeedKMH: 120, VisibilityKM: 0},
		{TemperatureC: 45, VisibilityKM: 10, GoodForOutdoor: false},
	}
	exps := []domain.Experience{
		outdoorExperience(domain.WeatherDepHigh),
		{ActivityType: domain.ActivityIndoor, WeatherDependency: domain.WeatherDepNone},
		{ActivityType: domain.ActivityMixed, WeatherDependency: domain.WeatherDepMedium},
	}

	for _, snap := range snaps {
		for _, exp := range exps {
			got := s.Score(exp, snap)
			if got.Score < 0 || got.Score > 1 {
				t.Errorf("score %v out of range for %s", got.Score, exp.ActivityType)
			}
			if got.Recommendation == "" {
				t.Error("recommendation text must never be empty")
			}
		}
	}
}
