package openmeteo

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/api"
	"weather-dashboard/models/forecast"
)

const FORECAST_ENDPOINT = "/v1/forecast"

var (
	CURRENT_FIELDS = []string{"temperature_2m", "relative_humidity_2m", "apparent_temperature", "is_day", "wind_speed_10m", "weather_code"}
	DAILY_FIELDS   = []string{"temperature_2m_max", "temperature_2m_min", "precipitation_probability_max"}
	HOURLY_FIELDS  = []string{"temperature_2m"}
)

// ForecastApiClient embeds the common HTTPClient
type ForecastApiClient struct {
	*api.HTTPClient
}

// NewForecastApiClient creates a new instance of ForecastApiClient
func NewForecastApiClient(httpClient *api.HTTPClient) *ForecastApiClient {
	return &ForecastApiClient{
		HTTPClient: httpClient,
	}
}

// GetForecast requests current conditions, 7 daily aggregates and hourly
// temperature, all in the given timezone.
func (c *ForecastApiClient) GetForecast(ctx context.Context, lat, lon float64, timezone string) (*forecast.Forecast, error) {
	var response forecast.Forecast
	if err := c.Request(ctx, "GET", FORECAST_ENDPOINT, ForecastQuery(lat, lon, timezone), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ForecastQuery builds the /v1/forecast query string arguments.
func ForecastQuery(lat, lon float64, timezone string) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", strings.Join(CURRENT_FIELDS, ","))
	q.Set("daily", strings.Join(DAILY_FIELDS, ","))
	q.Set("hourly", strings.Join(HOURLY_FIELDS, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecast.FORECAST_DAYS))
	q.Set("past_days", "0")
	return q
}
