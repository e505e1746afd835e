package openmeteo

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
)

// NewLimiter builds the token bucket shared by both Open-Meteo clients.
// rps can be fractional for less than one request per second.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimitedGeocodingAPI wraps a GeocodingAPI with rate limiting
type RateLimitedGeocodingAPI struct {
	api     GeocodingAPI
	limiter *rate.Limiter
}

func NewRateLimitedGeocodingAPI(api GeocodingAPI, limiter *rate.Limiter) *RateLimitedGeocodingAPI {
	return &RateLimitedGeocodingAPI{api: api, limiter: limiter}
}

func (r *RateLimitedGeocodingAPI) SearchCity(ctx context.Context, name string) (*models.GeocodingResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.api.SearchCity(ctx, name)
}

// RateLimitedForecastAPI wraps a ForecastAPI with rate limiting
type RateLimitedForecastAPI struct {
	api     ForecastAPI
	limiter *rate.Limiter
}

func NewRateLimitedForecastAPI(api ForecastAPI, limiter *rate.Limiter) *RateLimitedForecastAPI {
	return &RateLimitedForecastAPI{api: api, limiter: limiter}
}

func (r *RateLimitedForecastAPI) GetForecast(ctx context.Context, lat, lon float64, timezone string) (*forecast.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.api.GetForecast(ctx, lat, lon, timezone)
}

var (
	_ GeocodingAPI = (*RateLimitedGeocodingAPI)(nil)
	_ ForecastAPI  = (*RateLimitedForecastAPI)(nil)
)
