package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"weather-dashboard/api/openmeteo"
	"weather-dashboard/dao/redis"
	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
	"weather-dashboard/util"
)

// ErrCityNotFound is returned when geocoding yields no results.
var ErrCityNotFound = errors.New("city not found")

// WeatherService resolves cities and fetches forecasts, memoizing both
// through the weather DAO.
type WeatherService struct {
	weatherDao   *redis.RedisWeatherDAO
	geocodingApi openmeteo.GeocodingAPI
	forecastApi  openmeteo.ForecastAPI
}

// NewWeatherService constructs a new WeatherService.
func NewWeatherService(
	weatherDao *redis.RedisWeatherDAO,
	geocodingApi openmeteo.GeocodingAPI,
	forecastApi openmeteo.ForecastAPI) *WeatherService {

	return &WeatherService{
		weatherDao:   weatherDao,
		geocodingApi: geocodingApi,
		forecastApi:  forecastApi,
	}
}

// Geocode returns the first match for city. Identical queries inside the
// geocode window are served from cache; not-found answers are not cached.
func (ws *WeatherService) Geocode(ctx context.Context, city string) (*models.Place, error) {
	rid := util.RequestIDFrom(ctx)

	cached, err := ws.weatherDao.GetPlace(city)
	if err != nil {
		log.Printf("[WeatherService] request_id=%s Ignoring geocode cache error for %q: %v", rid, city, err)
	}
	if cached != nil {
		log.Printf("[WeatherService] request_id=%s Geocode cache HIT for %q", rid, city)
		return cached, nil
	}

	log.Printf("[WeatherService] request_id=%s Geocode cache MISS for %q, calling geocoding API", rid, city)
	resp, err := ws.geocodingApi.SearchCity(ctx, city)
	if err != nil {
		return nil, err
	}

	place, ok := resp.FirstPlace()
	if !ok {
		log.Printf("[WeatherService] request_id=%s No geocoding results for %q", rid, city)
		return nil, ErrCityNotFound
	}

	if err := ws.weatherDao.SetPlace(city, *place); err != nil {
		log.Printf("[WeatherService] request_id=%s Failed to cache place for %q: %v", rid, city, err)
	}
	return place, nil
}

// FetchForecast returns the forecast for the coordinates in timezone,
// served from cache inside the forecast window. Responses whose daily
// block is misaligned are rejected and never cached.
func (ws *WeatherService) FetchForecast(ctx context.Context, lat, lon float64, timezone string) (*forecast.Forecast, error) {
	rid := util.RequestIDFrom(ctx)

	cached, err := ws.weatherDao.GetForecast(lat, lon, timezone)
	if err != nil {
		log.Printf("[WeatherService] request_id=%s Ignoring forecast cache error: %v", rid, err)
	}
	if cached != nil {
		if verr := cached.Daily.Validate(); verr == nil {
			log.Printf("[WeatherService] request_id=%s Forecast cache HIT for %v,%v %s", rid, lat, lon, timezone)
			return cached, nil
		}
		if err := ws.weatherDao.DeleteForecast(lat, lon, timezone); err != nil {
			log.Printf("[WeatherService] request_id=%s %v", rid, err)
		}
	}

	log.Printf("[WeatherService] request_id=%s Forecast cache MISS for %v,%v %s, calling forecast API", rid, lat, lon, timezone)
	f, err := ws.forecastApi.GetForecast(ctx, lat, lon, timezone)
	if err != nil {
		return nil, err
	}
	if err := f.Daily.Validate(); err != nil {
		return nil, fmt.Errorf("malformed forecast: %w", err)
	}

	if err := ws.weatherDao.SetForecast(lat, lon, timezone, f); err != nil {
		log.Printf("[WeatherService] request_id=%s Failed to cache forecast: %v", rid, err)
	}
	return f, nil
}

// CacheStats reports how many places and forecasts are currently cached.
func (ws *WeatherService) CacheStats() (places, forecasts int, err error) {
	return ws.weatherDao.CountCachedEntries()
}
