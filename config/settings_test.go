package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), s)
	assert.Equal(t, time.Hour, s.Cache.GeocodeTTL)
	assert.Equal(t, 15*time.Minute, s.Cache.ForecastTTL)
	assert.Equal(t, "Seoul", s.Dashboard.DefaultCity)
	assert.Len(t, s.Dashboard.Presets, 7)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := `
server:
  addr: ":9090"
cache:
  backend: redis
  forecast_ttl: 5m
redis:
  addr: "localhost:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("WEATHER_DASHBOARD_REDIS_DB", "3")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", s.Server.Addr)
	assert.Equal(t, CACHE_BACKEND_REDIS, s.Cache.Backend)
	assert.Equal(t, 5*time.Minute, s.Cache.ForecastTTL)
	assert.Equal(t, time.Hour, s.Cache.GeocodeTTL)
	assert.Equal(t, "localhost:6379", s.Redis.Addr)
	assert.Equal(t, 3, s.Redis.DB)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"unknown backend", func(s *Settings) { s.Cache.Backend = "memcached" }},
		{"zero geocode ttl", func(s *Settings) { s.Cache.GeocodeTTL = 0 }},
		{"zero rate", func(s *Settings) { s.OpenMeteo.RequestsPerSecond = 0 }},
		{"no presets", func(s *Settings) { s.Dashboard.Presets = nil }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Defaults()
			test.mutate(s)
			assert.Error(t, s.Validate())
		})
	}

	assert.NoError(t, Defaults().Validate())
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/dashboard")
	assert.Equal(t, "/srv/dashboard/resources/forecast_response.json", GetResourcePath(FORECAST_RESPONSE_RESOURCE))
}
