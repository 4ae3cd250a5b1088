package weatherscore

import (
	"fmt"

	"skyStop/domain"
)

// tempDecayPerDegree is how fast the temperature sub-score falls outside the
// optimal range.
const tempDecayPerDegree = 0.1

type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg.normalized()}
}

// Score rates how compatible an experience is with the current weather.
// Warnings are a display side-channel; the numeric score already reflects
// everything they describe.
func (s *Scorer) Score(exp domain.Experience, weather domain.WeatherSnapshot) domain.WeatherScore {
	cfg := s.cfg

	outdoorExposed := exp.ActivityType == domain.ActivityOutdoor || exp.ActivityType == domain.ActivityMixed

	score := 1.0
	var warnings []string

	// temperature
	tempSub := temperatureSubScore(weather.TemperatureC, cfg.OptimalTempMinC, cfg.OptimalTempMaxC)
	score = blend(score, tempSub, cfg.TemperatureWeight)
	if outdoorExposed {
		if weather.TemperatureC < cfg.OptimalTempMinC-5 {
			warnings = append(warnings, fmt.Sprintf("cold conditions expected (%.0f°C)", weather.TemperatureC))
		} else if weather.TemperatureC > cfg.OptimalTempMaxC+5 {
			warnings = append(warnings, fmt.Sprintf("high temperatures expected (%.0f°C)", weather.TemperatureC))
		}
	}

	// precipitation
	precipSub := 1.0
	if outdoorExposed && weather.PrecipitationMMH > cfg.PrecipitationThresholdMMH {
		over := weather.PrecipitationMMH - cfg.PrecipitationThresholdMMH
		precipSub = clamp01(1 - over/10)
		warnings = append(warnings, "rain expected")
	}
	score = blend(score, precipSub, cfg.PrecipitationWeight)

	// wind
	windSub := 1.0
	if outdoorExposed && weather.WindSpeedKMH > cfg.WindThresholdKMH {
		over := weather.WindSpeedKMH - cfg.WindThresholdKMH
		windSub = clamp01(1 - over/40)
		warnings = append(warnings, "strong winds")
	}
	score = blend(score, windSub, cfg.WindWeight)

	// visibility, linear up to 10 km
	visSub := clamp01(weather.VisibilityKM / 10)
	score = blend(score, visSub, cfg.VisibilityWeight)
	if outdoorExposed && weather.VisibilityKM < 2 {
		warnings = append(warnings, "poor visibility")
	}

	// indoor activities benefit when the weather drives people inside
	if exp.ActivityType == domain.ActivityIndoor && !weather.GoodForOutdoor {
		score *= cfg.IndoorBadWeatherBonus
	}

	// a weather-critical activity in unfavorable weather is capped low
	if outdoorExposed && exp.WeatherDependency == domain.WeatherDepHigh && !weather.GoodForOutdoor {
		if score > 0.3 {
			score = 0.3
		}
		if len(warnings) == 0 {
			warnings = append(warnings, "weather unfavorable for outdoor activities")
		}
	}

	score = clamp01(score)

	return domain.WeatherScore{
		Score:          score,
		Recommendation: recommendation(score),
		Warnings:       warnings,
	}
}

// temperatureSubScore is 1.0 inside the optimal range and decays linearly
// outside it.
func temperatureSubScore(tempC, optMin, optMax float64) float64 {
	switch {
	case tempC < optMin:
		return clamp01(1 - (optMin-tempC)*tempDecayPerDegree)
	case tempC > optMax:
		return clamp01(1 - (tempC-optMax)*tempDecayPerDegree)
	default:
		return 1.0
	}
}

// blend folds a weighted sub-score into the running score. With weight 0 the
// sub-score has no effect, with weight 1 it multiplies through fully.
func blend(score, sub, weight float64) float64 {
	return score * ((1 - weight) + weight*sub)
}

func recommendation(score float64) string {
	switch {
	case score >= 0.8:
		return "excellent conditions for this activity"
	case score >= 0.6:
		return "good conditions"
	case score >= 0.4:
		return "acceptable, check the warnings"
	case score >= 0.2:
		return "marginal conditions, consider indoor alternatives"
	default:
		return "not recommended in the current weather"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
