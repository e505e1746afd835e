package openmeteo

import (
	"context"
	"log"
	"strings"

	"weather-dashboard/config"
	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
	"weather-dashboard/util"
)

// OpenMeteoApiClientMock serves fixture responses from the resources
// directory. Only the fixture's city resolves, matched case-insensitively;
// any other name gets the empty geocoding response.
type OpenMeteoApiClientMock struct {
	geocodingPath      string
	emptyGeocodingPath string
	forecastPath       string
}

// NewOpenMeteoApiClientMock creates a new instance of OpenMeteoApiClientMock
func NewOpenMeteoApiClientMock() *OpenMeteoApiClientMock {
	return &OpenMeteoApiClientMock{
		geocodingPath:      config.GetResourcePath(config.GEOCODING_RESPONSE_RESOURCE),
		emptyGeocodingPath: config.GetResourcePath(config.GEOCODING_EMPTY_RESPONSE_RESOURCE),
		forecastPath:       config.GetResourcePath(config.FORECAST_RESPONSE_RESOURCE),
	}
}

func (c *OpenMeteoApiClientMock) SearchCity(ctx context.Context, name string) (*models.GeocodingResponse, error) {
	response, err := util.ReadGeocodingResponseFromJSON(c.geocodingPath)
	if err != nil {
		log.Printf("[OpenMeteoApiClientMock] Could not read geocoding response from json: %v", err)
		return nil, err
	}
	if place, ok := response.FirstPlace(); ok && strings.EqualFold(place.Name, name) {
		return response, nil
	}

	empty, err := util.ReadGeocodingResponseFromJSON(c.emptyGeocodingPath)
	if err != nil {
		log.Printf("[OpenMeteoApiClientMock] Could not read empty geocoding response from json: %v", err)
		return nil, err
	}
	return empty, nil
}

func (c *OpenMeteoApiClientMock) GetForecast(ctx context.Context, lat, lon float64, timezone string) (*forecast.Forecast, error) {
	response, err := util.ReadForecastFromJSON(c.forecastPath)
	if err != nil {
		log.Printf("[OpenMeteoApiClientMock] Could not read forecast response from json: %v", err)
		return nil, err
	}
	return response, nil
}

var (
	_ GeocodingAPI = (*OpenMeteoApiClientMock)(nil)
	_ ForecastAPI  = (*OpenMeteoApiClientMock)(nil)
)
