package weatherscore

// Config holds the scoring weights and thresholds. It is plain data supplied
// by the configuration owner; zero values fall back to defaults.
type Config struct {
	TemperatureWeight   float64 // 0..1
	PrecipitationWeight float64 // 0..1
	WindWeight          float64 // 0..1
	VisibilityWeight    float64 // 0..1

	OptimalTempMinC float64
	OptimalTempMaxC float64

	PrecipitationThresholdMMH float64
	WindThresholdKMH          float64

	IndoorBadWeatherBonus float64 // multiplier applied to indoor activities in bad weather
}

const (
	defaultTemperatureWeight   = 0.35
	defaultPrecipitationWeight = 0.30
	defaultWindWeight          = 0.20
	defaultVisibilityWeight    = 0.15

	defaultOptimalTempMinC = 15.0
	defaultOptimalTempMaxC = 26.0

	defaultPrecipitationThresholdMMH = 2.5
	defaultWindThresholdKMH          = 35.0

	defaultIndoorBadWeatherBonus = 1.25
)

func DefaultConfig() Config {
	return Config{
		TemperatureWeight:   defaultTemperatureWeight,
		PrecipitationWeight: defaultPrecipitationWeight,
		WindWeight:          defaultWindWeight,
		VisibilityWeight:    defaultVisibilityWeight,

		OptimalTempMinC: defaultOptimalTempMinC,
		OptimalTempMaxC: defaultOptimalTempMaxC,

		PrecipitationThresholdMMH: defaultPrecipitationThresholdMMH,
		WindThresholdKMH:          defaultWindThresholdKMH,

		IndoorBadWeatherBonus: defaultIndoorBadWeatherBonus,
	}
}

// normalized returns a copy with zero fields replaced by defaults, so a
// partially filled config from the store still scores sensibly.
func (c Config) normalized() Config {
	d := DefaultConfig()

	if c.TemperatureWeight <= 0 {
		c.TemperatureWeight = d.TemperatureWeight
	}
	if c.PrecipitationWeight <= 0 {
		c.PrecipitationWeight = d.PrecipitationWeight
	}
	if c.WindWeight <= 0 {
		c.WindWeight = d.WindWeight
	}
	if c.VisibilityWeight <= 0 {
		c.VisibilityWeight = d.VisibilityWeight
	}
	if c.OptimalTempMaxC <= c.OptimalTempMinC {
		c.OptimalTempMinC = d.OptimalTempMinC
		c.OptimalTempMaxC = d.OptimalTempMaxC
	}
	if c.PrecipitationThresholdMMH <= 0 {
		c.PrecipitationThresholdMMH = d.PrecipitationThresholdMMH
	}
	if c.WindThresholdKMH <= 0 {
		c.WindThresholdKMH = d.WindThresholdKMH
	}
	if c.IndoorBadWeatherBonus <= 1 {
		c.IndoorBadWeatherBonus = d.IndoorBadWeatherBonus
	}

	return c
}
