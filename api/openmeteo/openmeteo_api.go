package openmeteo

import (
	"context"

	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
)

// GeocodingAPI resolves free-text city names.
type GeocodingAPI interface {
	SearchCity(ctx context.Context, name string) (*models.GeocodingResponse, error)
}

// ForecastAPI fetches the current conditions and the 7-day outlook.
type ForecastAPI interface {
	GetForecast(ctx context.Context, lat, lon float64, timezone string) (*forecast.Forecast, error)
}
