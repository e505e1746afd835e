package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"weather-dashboard/models"
	"weather-dashboard/util"
)

const (
	PROMPT_MESSAGE    = "Enter a city to begin."
	NOT_FOUND_MESSAGE = "City not found. Try a different name."
)

// DashboardService runs one render cycle: geocode, then forecast, halting
// at the first failure.
type DashboardService struct {
	weatherService *WeatherService
}

func NewDashboardService(weatherService *WeatherService) *DashboardService {
	return &DashboardService{weatherService: weatherService}
}

// Build never returns a partial dashboard: Place and Forecast are set only
// when both calls succeed.
func (ds *DashboardService) Build(ctx context.Context, city string) *models.Dashboard {
	rid := util.RequestIDFrom(ctx)
	city = strings.TrimSpace(city)
	if city == "" {
		return &models.Dashboard{State: models.DashboardPrompt, Message: PROMPT_MESSAGE}
	}

	place, err := ds.weatherService.Geocode(ctx, city)
	if err != nil {
		d := &models.Dashboard{State: models.DashboardGeocodeFailed, City: city, Err: err}
		if errors.Is(err, ErrCityNotFound) {
			d.Message = NOT_FOUND_MESSAGE
		} else {
			d.Message = fmt.Sprintf("Failed to look up city: %v", err)
			log.Printf("[DashboardService] request_id=%s Geocoding %q failed: %v", rid, city, err)
		}
		return d
	}

	f, err := ds.weatherService.FetchForecast(ctx, place.Lat, place.Lon, place.Timezone)
	if err != nil {
		log.Printf("[DashboardService] request_id=%s Forecast for %q failed: %v", rid, city, err)
		return &models.Dashboard{
			State:   models.DashboardForecastFailed,
			City:    city,
			Message: fmt.Sprintf("Failed to fetch forecast: %v", err),
			Err:     err,
		}
	}

	return &models.Dashboard{
		State:    models.DashboardRendered,
		City:     city,
		Place:    place,
		Forecast: f,
	}
}
