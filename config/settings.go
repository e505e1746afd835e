package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const ENV_PREFIX = "WEATHER_DASHBOARD"

// Settings is the operator configuration. The dashboard itself takes all
// of its input interactively.
type Settings struct {
	Server    ServerSettings    `mapstructure:"server"`
	OpenMeteo OpenMeteoSettings `mapstructure:"open_meteo"`
	Cache     CacheSettings     `mapstructure:"cache"`
	Redis     RedisSettings     `mapstructure:"redis"`
	Dashboard DashboardSettings `mapstructure:"dashboard"`
}

type ServerSettings struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type OpenMeteoSettings struct {
	GeocodingBaseURL  string        `mapstructure:"geocoding_base_url"`
	ForecastBaseURL   string        `mapstructure:"forecast_base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type CacheSettings struct {
	Backend     string        `mapstructure:"backend"`
	GeocodeTTL  time.Duration `mapstructure:"geocode_ttl"`
	ForecastTTL time.Duration `mapstructure:"forecast_ttl"`
}

type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DashboardSettings struct {
	DefaultCity string   `mapstructure:"default_city"`
	Presets     []string `mapstructure:"presets"`
}

// Load reads settings from the optional config file and WEATHER_DASHBOARD_*
// environment variables, falling back to the package defaults.
func Load(configPath string) (*Settings, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/weather-dashboard")
	}

	setDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		Server: ServerSettings{
			Addr:            SERVER_ADDRESS,
			ShutdownTimeout: SERVER_SHUTDOWN_TIMEOUT,
		},
		OpenMeteo: OpenMeteoSettings{
			GeocodingBaseURL:  GEOCODING_ENDPOINT_BASE_V1,
			ForecastBaseURL:   FORECAST_ENDPOINT_BASE_V1,
			Timeout:           OPEN_METEO_TIMEOUT,
			RequestsPerSecond: OPEN_METEO_REQUESTS_PER_SECOND,
			Burst:             OPEN_METEO_BURST,
		},
		Cache: CacheSettings{
			Backend:     CACHE_BACKEND_MEMORY,
			GeocodeTTL:  GEOCODE_CACHE_TTL,
			ForecastTTL: FORECAST_CACHE_TTL,
		},
		Redis: RedisSettings{
			Addr:     REDIS_DB_ADDRESS,
			Password: REDIS_DB_PASSWORD,
			DB:       REDIS_DB,
		},
		Dashboard: DashboardSettings{
			DefaultCity: DEFAULT_CITY,
			Presets:     append([]string(nil), PRESET_CITIES...),
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("open_meteo.geocoding_base_url", d.OpenMeteo.GeocodingBaseURL)
	v.SetDefault("open_meteo.forecast_base_url", d.OpenMeteo.ForecastBaseURL)
	v.SetDefault("open_meteo.timeout", d.OpenMeteo.Timeout)
	v.SetDefault("open_meteo.requests_per_second", d.OpenMeteo.RequestsPerSecond)
	v.SetDefault("open_meteo.burst", d.OpenMeteo.Burst)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.geocode_ttl", d.Cache.GeocodeTTL)
	v.SetDefault("cache.forecast_ttl", d.Cache.ForecastTTL)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("dashboard.default_city", d.Dashboard.DefaultCity)
	v.SetDefault("dashboard.presets", d.Dashboard.Presets)
}

// Validate rejects settings the container cannot wire.
func (s *Settings) Validate() error {
	switch s.Cache.Backend {
	case CACHE_BACKEND_MEMORY, CACHE_BACKEND_REDIS:
	default:
		return fmt.Errorf("unknown cache backend %q", s.Cache.Backend)
	}
	if s.Cache.GeocodeTTL <= 0 || s.Cache.ForecastTTL <= 0 {
		return errors.New("cache ttls must be positive")
	}
	if s.OpenMeteo.RequestsPerSecond <= 0 || s.OpenMeteo.Burst <= 0 {
		return errors.New("open_meteo rate limit must be positive")
	}
	if len(s.Dashboard.Presets) == 0 {
		return errors.New("dashboard.presets must not be empty")
	}
	return nil
}
