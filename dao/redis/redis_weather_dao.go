package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"weather-dashboard/db"
	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
)

const GEOCODE_KEY_FORMAT = "geocode_v1:%s"

// FORECAST_KEY_FORMAT is keyed by latitude, longitude and timezone.
const FORECAST_KEY_FORMAT = "forecast_v1:%s_%s_%s"

// RedisWeatherDAO memoizes geocoding and forecast results in the cache
// client, each with its own window.
type RedisWeatherDAO struct {
	client      db.CacheClient
	geocodeTTL  time.Duration
	forecastTTL time.Duration
}

// NewRedisWeatherDAO initializes a RedisWeatherDAO with the cache client.
func NewRedisWeatherDAO(client db.CacheClient, geocodeTTL, forecastTTL time.Duration) *RedisWeatherDAO {
	return &RedisWeatherDAO{
		client:      client,
		geocodeTTL:  geocodeTTL,
		forecastTTL: forecastTTL,
	}
}

func GeocodeKey(city string) string {
	return fmt.Sprintf(GEOCODE_KEY_FORMAT, city)
}

func ForecastKey(lat, lon float64, timezone string) string {
	return fmt.Sprintf(FORECAST_KEY_FORMAT,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		timezone)
}

// SetPlace caches the resolved place for a city query.
func (dao *RedisWeatherDAO) SetPlace(city string, p models.Place) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal place for %q: %w", city, err)
	}
	if err := dao.client.Set(GeocodeKey(city), string(data), dao.geocodeTTL); err != nil {
		return fmt.Errorf("failed to set place in cache: %w", err)
	}
	return nil
}

// GetPlace returns nil, nil on a cache miss.
func (dao *RedisWeatherDAO) GetPlace(city string) (*models.Place, error) {
	str, err := dao.client.Get(GeocodeKey(city))
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place from cache: %w", err)
	}
	var p models.Place
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place JSON: %w", err)
	}
	return &p, nil
}

// SetForecast caches the raw forecast for a coordinate/timezone tuple.
func (dao *RedisWeatherDAO) SetForecast(lat, lon float64, timezone string, f *forecast.Forecast) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast: %w", err)
	}
	if err := dao.client.Set(ForecastKey(lat, lon, timezone), string(data), dao.forecastTTL); err != nil {
		return fmt.Errorf("failed to set forecast in cache: %w", err)
	}
	return nil
}

// GetForecast returns nil, nil on a cache miss.
func (dao *RedisWeatherDAO) GetForecast(lat, lon float64, timezone string) (*forecast.Forecast, error) {
	str, err := dao.client.Get(ForecastKey(lat, lon, timezone))
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast from cache: %w", err)
	}
	var f forecast.Forecast
	if err := json.Unmarshal([]byte(str), &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return &f, nil
}

// DeleteForecast drops a cached forecast.
func (dao *RedisWeatherDAO) DeleteForecast(lat, lon float64, timezone string) error {
	key := ForecastKey(lat, lon, timezone)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast key %s: %w", key, err)
	}
	log.Printf("[RedisWeatherDAO] Deleted forecast cache %s", key)
	return nil
}

// CountCachedEntries reports how many places and forecasts are cached.
func (dao *RedisWeatherDAO) CountCachedEntries() (places, forecasts int, err error) {
	placeKeys, err := dao.client.Keys(fmt.Sprintf(GEOCODE_KEY_FORMAT, "*"))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list geocode keys: %w", err)
	}
	forecastKeys, err := dao.client.Keys("forecast_v1:*")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list forecast keys: %w", err)
	}
	return len(placeKeys), len(forecastKeys), nil
}
