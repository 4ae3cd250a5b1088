package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"skyStop/domain"
	"skyStop/pkg/logger"
)

type WeatherAPIConfig struct {
	BaseURL string
	APIKey  string
}

// SnapshotCache is an optional cache in front of the upstream provider.
// Cache failures are logged and ignored; the provider is the source of truth.
type SnapshotCache interface {
	Get(ctx context.Context, city string) (domain.WeatherSnapshot, bool, error)
	Set(ctx context.Context, city string, snap domain.WeatherSnapshot) error
}

type WeatherRepository struct {
	cfg    WeatherAPIConfig
	client *http.Client
	cache  SnapshotCache
}

func NewWeatherRepository(cfg WeatherAPIConfig, cache SnapshotCache) *WeatherRepository {
	return &WeatherRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  cache,
	}
}

type currentResponse struct {
	Current struct {
		TempC    float64 `json:"temp_c"`
		PrecipMM float64 `json:"precip_mm"`
		WindKPH  float64 `json:"wind_kph"`
		VisKM    float64 `json:"vis_km"`
	} `json:"current"`
}

func (r *WeatherRepository) Current(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	if r.cache != nil {
		if snap, ok, err := r.cache.Get(ctx, city); err == nil && ok {
			return snap, nil
		} else if err != nil {
			logger.Warn("weather cache read failed", "city", city, "error", err)
		}
	}

	snap, err := r.fetch(ctx, city)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, city, snap); err != nil {
			logger.Warn("weather cache write failed", "city", city, "error", err)
		}
	}

	return snap, nil
}

func (r *WeatherRepository) fetch(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	endpoint := fmt.Sprintf("%s/v1/current.json?key=%s&q=%s",
		r.cfg.BaseURL, url.QueryEscape(r.cfg.APIKey), url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather provider request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(res.Body)
		logger.Warn("weather provider negative response", "status", res.StatusCode, "body", string(bodyBytes))
		return domain.WeatherSnapshot{}, fmt.Errorf("weather provider returned status %v", res.StatusCode)
	}

	var parsed currentResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	snap := domain.WeatherSnapshot{
		TemperatureC:     parsed.Current.TempC,
		PrecipitationMMH: parsed.Current.PrecipMM,
		WindSpeedKMH:     parsed.Current.WindKPH,
		VisibilityKM:     parsed.Current.VisKM,
	}
	snap.GoodForOutdoor = snap.DeriveOutdoorSuitability()

	return snap, nil
}
