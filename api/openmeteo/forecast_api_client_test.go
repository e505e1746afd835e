package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/api"
	"weather-dashboard/config"
)

func TestGetForecast(t *testing.T) {
	fixture, err := os.ReadFile(config.GetResourcePath(config.FORECAST_RESPONSE_RESOURCE))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("expected path /v1/forecast; got %s", r.URL.Path)
		}

		q := r.URL.Query()
		checks := []struct {
			key  string
			want string
		}{
			{"latitude", "37.566"},
			{"longitude", "126.9784"},
			{"current", "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,wind_speed_10m,weather_code"},
			{"daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max"},
			{"hourly", "temperature_2m"},
			{"timezone", "Asia/Seoul"},
			{"forecast_days", "7"},
			{"past_days", "0"},
		}
		for _, c := range checks {
			if got := q.Get(c.key); got != c.want {
				t.Errorf("query[%q] = %q; want %q", c.key, got, c.want)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer srv.Close()

	client := NewForecastApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetForecast(context.Background(), 37.566, 126.9784, "Asia/Seoul")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Seoul", got.Timezone)
	assert.Equal(t, 7, got.Daily.Len())
	assert.Len(t, got.Hourly.Temperature2m, 7*24)
	require.NotNil(t, got.Current.WeatherCode)
	assert.Equal(t, 2, *got.Current.WeatherCode)
	assert.NoError(t, got.Daily.Validate())
}

func TestGetForecast_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewForecastApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetForecast(context.Background(), 1, 2, "UTC")
	assert.Nil(t, got)
	assert.EqualError(t, err, "unexpected status code: 500 Internal Server Error")
}

func TestForecastQuery(t *testing.T) {
	q := ForecastQuery(-33.8678, 151.2073, "Australia/Sydney")

	assert.Equal(t, "-33.8678", q.Get("latitude"))
	assert.Equal(t, "151.2073", q.Get("longitude"))
	assert.Equal(t, "Australia/Sydney", q.Get("timezone"))
	assert.Len(t, q, 8)
}
