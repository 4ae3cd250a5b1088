package domain

// WeatherSnapshot is read-only input sourced from the weather collaborator.
type WeatherSnapshot struct {
	TemperatureC     float64 `json:"temperature_c"`
	PrecipitationMMH float64 `json:"precipitation_mm_h"`
	WindSpeedKMH     float64 `json:"wind_speed_kmh"`
	VisibilityKM     float64 `json:"visibility_km"`
	GoodForOutdoor   bool    `json:"good_for_outdoor"`
}

// Category buckets a snapshot for pricing-strategy condition matching.
func (w WeatherSnapshot) Category() string {
	switch {
	case w.PrecipitationMMH > 2.5:
		return "rain"
	case w.WindSpeedKMH > 35:
		return "windy"
	case w.TemperatureC < 5:
		return "cold"
	case w.TemperatureC > 32:
		return "hot"
	default:
		return "clear"
	}
}

// DeriveOutdoorSuitability recomputes the favorable-for-outdoor flag from the
// raw measurements. Providers that already supply the flag keep their value.
func (w WeatherSnapshot) DeriveOutdoorSuitability() bool {
	return w.TemperatureC >= 5 && w.TemperatureC <= 32 &&
		w.PrecipitationMMH < 2.5 &&
		w.WindSpeedKMH < 35 &&
		w.VisibilityKM >= 3
}

// WeatherScore is the weather scorer output for one candidate.
type WeatherScore struct {
	Score          float64  `json:"score"`
	Recommendation string   `json:"recommendation"`
	Warnings       []string `json:"warnings"`
}
