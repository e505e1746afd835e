package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"weather-dashboard/api"
	"weather-dashboard/api/openmeteo"
	"weather-dashboard/config"
	"weather-dashboard/dao/redis"
	"weather-dashboard/db"
	"weather-dashboard/server"
	"weather-dashboard/server/handlers"
	services "weather-dashboard/service"
)

const ENV_PROD = "prod"

// Container holds all application dependencies.
type Container struct {
	CacheClient                db.CacheClient
	RedisWeatherDao            *redis.RedisWeatherDAO
	GeocodingAPI               openmeteo.GeocodingAPI
	ForecastAPI                openmeteo.ForecastAPI
	WeatherService             *services.WeatherService
	DashboardService           *services.DashboardService
	DashboardHandler           *handlers.DashboardHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	WeatherDashboardHttpServer *server.WeatherDashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(settings *config.Settings, env string) (*Container, error) {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	cacheClient, err := newCacheClient(ctx, settings)
	if err != nil {
		return nil, err
	}

	redisWeatherDao := redis.NewRedisWeatherDAO(cacheClient, settings.Cache.GeocodeTTL, settings.Cache.ForecastTTL)

	var geocodingAPI openmeteo.GeocodingAPI
	var forecastAPI openmeteo.ForecastAPI
	if env != ENV_PROD {
		mock := openmeteo.NewOpenMeteoApiClientMock()
		geocodingAPI, forecastAPI = mock, mock
		log.Printf("Using mock open-meteo api")
	} else {
		log.Printf("Using prod open-meteo api")
		om := settings.OpenMeteo
		// both endpoints share one outbound budget
		limiter := openmeteo.NewLimiter(om.RequestsPerSecond, om.Burst)
		geocodingAPI = openmeteo.NewRateLimitedGeocodingAPI(
			openmeteo.NewGeocodingApiClient(api.NewHTTPClientWithTimeout(om.GeocodingBaseURL, om.Timeout)), limiter)
		forecastAPI = openmeteo.NewRateLimitedForecastAPI(
			openmeteo.NewForecastApiClient(api.NewHTTPClientWithTimeout(om.ForecastBaseURL, om.Timeout)), limiter)
	}

	weatherService := services.NewWeatherService(redisWeatherDao, geocodingAPI, forecastAPI)
	dashboardService := services.NewDashboardService(weatherService)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, weatherService, settings.Dashboard)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, muxRouter)
	httpServer := server.NewWeatherDashboardHttpServer(router, muxRouter, settings.Server.Addr, settings.Server.ShutdownTimeout)

	return &Container{
		CacheClient:                cacheClient,
		RedisWeatherDao:            redisWeatherDao,
		GeocodingAPI:               geocodingAPI,
		ForecastAPI:                forecastAPI,
		WeatherService:             weatherService,
		DashboardService:           dashboardService,
		DashboardHandler:           dashboardHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		WeatherDashboardHttpServer: httpServer,
	}, nil
}

func newCacheClient(ctx context.Context, settings *config.Settings) (db.CacheClient, error) {
	if settings.Cache.Backend != config.CACHE_BACKEND_REDIS {
		log.Printf("Using in-memory cache")
		return db.NewMemoryCacheClient(ctx), nil
	}

	log.Printf("Using redis cache at %s", settings.Redis.Addr)
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     settings.Redis.Addr,
		Password: settings.Redis.Password,
		DB:       settings.Redis.DB,
	})

	client := db.NewRedisCacheClient(ctx, redisInternalClient)
	if err := client.Ping(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Close releases the cache connection.
func (c *Container) Close() error {
	if mem, ok := c.CacheClient.(*db.MemoryCacheClient); ok {
		hits, misses := mem.Stats()
		log.Printf("[Container] in-memory cache hits=%d misses=%d", hits, misses)
	}
	return c.CacheClient.Close()
}
