package config

import (
	"os"
	"path/filepath"
	"time"
)

// Open-Meteo endpoints
const GEOCODING_ENDPOINT_BASE_V1 = "https://geocoding-api.open-meteo.com"
const FORECAST_ENDPOINT_BASE_V1 = "https://api.open-meteo.com"
const OPEN_METEO_TIMEOUT = 10 * time.Second

// Outbound rate limit, shared by both Open-Meteo clients
const OPEN_METEO_REQUESTS_PER_SECOND = 10.0
const OPEN_METEO_BURST = 5

// Memoization windows
const GEOCODE_CACHE_TTL = time.Hour
const FORECAST_CACHE_TTL = 15 * time.Minute

// Cache backends
const CACHE_BACKEND_MEMORY = "memory"
const CACHE_BACKEND_REDIS = "redis"

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server
const SERVER_ADDRESS = ":8080"
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Dashboard input
const DEFAULT_CITY = "Seoul"

var PRESET_CITIES = []string{"Seoul", "Tokyo", "New York", "London", "Paris", "Singapore", "Sydney"}

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEOCODING_RESPONSE_RESOURCE = "geocoding_response.json"
const GEOCODING_EMPTY_RESPONSE_RESOURCE = "geocoding_empty_response.json"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	// package tests run from the package directory, so walk up to go.mod
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
