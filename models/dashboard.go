package models

import "weather-dashboard/models/forecast"

// DashboardState is the terminal state of one render cycle.
type DashboardState string

const (
	DashboardPrompt         DashboardState = "prompt"
	DashboardGeocodeFailed  DashboardState = "geocode_failed"
	DashboardForecastFailed DashboardState = "forecast_failed"
	DashboardRendered       DashboardState = "rendered"
)

// Dashboard is the outcome of resolving a city and fetching its forecast.
// Place and Forecast are only set when State is DashboardRendered.
type Dashboard struct {
	State    DashboardState     `json:"state"`
	City     string             `json:"city"`
	Place    *Place             `json:"place,omitempty"`
	Forecast *forecast.Forecast `json:"forecast,omitempty"`
	Message  string             `json:"message,omitempty"`
	Err      error              `json:"-"`
}

func (d *Dashboard) Rendered() bool {
	return d.State == DashboardRendered
}
