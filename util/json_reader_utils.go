package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
)

// ReadGeocodingResponseFromJSON loads a GeocodingResponse from JSON on disk.
func ReadGeocodingResponseFromJSON(filePath string) (*models.GeocodingResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.GeocodingResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeocodingResponse: %w", err)
	}
	return &resp, nil
}

// ReadForecastFromJSON loads a Forecast from JSON on disk.
func ReadForecastFromJSON(filePath string) (*forecast.Forecast, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp forecast.Forecast
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Forecast: %w", err)
	}
	return &resp, nil
}
