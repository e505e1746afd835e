package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"weather-dashboard/config"
	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
	services "weather-dashboard/service"
	"weather-dashboard/util"
)

const (
	CITY_QUERY_ARG       = "city"
	PRESET_QUERY_ARG     = "preset"
	USE_PRESET_QUERY_ARG = "use_preset"

	DAILY_CHARTS_PATH = "/charts/daily"
)

// DashboardBuilder runs one render cycle for a city.
type DashboardBuilder interface {
	Build(ctx context.Context, city string) *models.Dashboard
}

// CacheReporter reports memoization cache occupancy.
type CacheReporter interface {
	CacheStats() (places, forecasts int, err error)
}

// WeatherResponse is the JSON body of GET /v1/weather.
type WeatherResponse struct {
	Place    models.Place      `json:"place"`
	Current  util.CurrentCard  `json:"current"`
	Forecast forecast.Forecast `json:"forecast"`
}

type DashboardHandler struct {
	dashboards DashboardBuilder
	cache      CacheReporter
	settings   config.DashboardSettings
}

func NewDashboardHandler(dashboards DashboardBuilder, cache CacheReporter, settings config.DashboardSettings) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, cache: cache, settings: settings}
}

// Dashboard handles GET /. Failures are shown inline in place of the
// dashboard, so the page is always served with 200.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	city := ResolveCity(vals, h.settings)
	d := h.dashboards.Build(r.Context(), city)

	page := dashboardPage{
		City:           city,
		Presets:        h.settings.Presets,
		SelectedPreset: selectedPreset(vals, h.settings),
		Dashboard:      d,
	}
	if d.Rendered() {
		card := util.NewCurrentCard(*d.Place, *d.Forecast)
		page.Card = &card
		page.ChartsURL = DAILY_CHARTS_PATH + "?" + url.Values{CITY_QUERY_ARG: {city}}.Encode()
	}

	log.Printf("[DashboardHandler] request_id=%s city=%q state=%s", util.RequestIDFrom(r.Context()), city, d.State)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := dashboardTemplate.Execute(w, page); err != nil {
		log.Println("[DashboardHandler] Error rendering dashboard:", err)
	}
}

// DailyCharts handles GET /charts/daily with the two 7-day charts.
func (h *DashboardHandler) DailyCharts(w http.ResponseWriter, r *http.Request) {
	d := h.dashboards.Build(r.Context(), ResolveCity(r.URL.Query(), h.settings))
	if !d.Rendered() {
		http.Error(w, d.Message, statusFor(d))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderDailyCharts(w, d.Forecast.Daily); err != nil {
		log.Println("[DashboardHandler] Error rendering charts:", err)
	}
}

// GetWeather handles GET /v1/weather?city={name}
func (h *DashboardHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	d := h.dashboards.Build(r.Context(), ResolveCity(r.URL.Query(), h.settings))
	if !d.Rendered() {
		writeJSON(w, statusFor(d), map[string]string{"error": d.Message})
		return
	}

	writeJSON(w, http.StatusOK, WeatherResponse{
		Place:    *d.Place,
		Current:  util.NewCurrentCard(*d.Place, *d.Forecast),
		Forecast: *d.Forecast,
	})
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"status": "pong"}
	places, forecasts, err := h.cache.CacheStats()
	if err != nil {
		log.Println("[DashboardHandler] Error reading cache stats:", err)
	} else {
		resp["cached_places"] = places
		resp["cached_forecasts"] = forecasts
	}
	writeJSON(w, http.StatusOK, resp)
}

// ResolveCity applies the sidebar inputs: the text field (default city when
// absent), overridden by the preset when the quick-select button was used.
func ResolveCity(vals url.Values, settings config.DashboardSettings) string {
	city := settings.DefaultCity
	if _, ok := vals[CITY_QUERY_ARG]; ok {
		city = vals.Get(CITY_QUERY_ARG)
	}
	if vals.Get(USE_PRESET_QUERY_ARG) != "" {
		city = selectedPreset(vals, settings)
	}
	return strings.TrimSpace(city)
}

func selectedPreset(vals url.Values, settings config.DashboardSettings) string {
	preset := vals.Get(PRESET_QUERY_ARG)
	for _, p := range settings.Presets {
		if p == preset {
			return p
		}
	}
	return settings.Presets[0]
}

func statusFor(d *models.Dashboard) int {
	switch d.State {
	case models.DashboardPrompt:
		return http.StatusBadRequest
	case models.DashboardGeocodeFailed:
		if errors.Is(d.Err, services.ErrCityNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case models.DashboardForecastFailed:
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[DashboardHandler] Error encoding response:", err)
	}
}
