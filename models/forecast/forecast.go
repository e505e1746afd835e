package forecast

import (
	"fmt"
	"time"
)

const DATE_LAYOUT = "2006-01-02"

// FORECAST_DAYS is the number of daily entries requested and accepted.
const FORECAST_DAYS = 7

// Forecast is the top-level JSON returned by GET /v1/forecast
type Forecast struct {
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	Timezone         string            `json:"timezone"`
	UTCOffsetSeconds int               `json:"utc_offset_seconds"`
	CurrentUnits     map[string]string `json:"current_units,omitempty"`
	Current          Current           `json:"current"`
	DailyUnits       map[string]string `json:"daily_units,omitempty"`
	Daily            Daily             `json:"daily"`
	HourlyUnits      map[string]string `json:"hourly_units,omitempty"`
	Hourly           Hourly            `json:"hourly"`
}

// Current is a snapshot valid at fetch time.
type Current struct {
	Time                string  `json:"time"`
	Interval            int     `json:"interval"`
	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WeatherCode         *int    `json:"weather_code"`
}

// Daily holds parallel sequences aligned by index, one entry per day.
type Daily struct {
	Time                        []string   `json:"time"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max"`
	Temperature2mMin            []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// Hourly is fetched but not rendered.
type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2m []float64 `json:"temperature_2m"`
}

// Len is the number of forecast days.
func (d Daily) Len() int {
	return len(d.Time)
}

// Dates parses the time sequence.
func (d Daily) Dates() ([]time.Time, error) {
	dates := make([]time.Time, len(d.Time))
	for i, s := range d.Time {
		t, err := time.Parse(DATE_LAYOUT, s)
		if err != nil {
			return nil, fmt.Errorf("daily.time[%d]: %w", i, err)
		}
		dates[i] = t
	}
	return dates, nil
}

// Validate checks that there is one entry per forecast day, that all daily
// sequences have the same length and that the dates ascend. Null values are
// allowed.
func (d Daily) Validate() error {
	n := len(d.Time)
	if n != FORECAST_DAYS {
		return fmt.Errorf("expected %d forecast days, got %d", FORECAST_DAYS, n)
	}
	if len(d.Temperature2mMax) != n || len(d.Temperature2mMin) != n || len(d.PrecipitationProbabilityMax) != n {
		return fmt.Errorf("daily sequences not aligned: time=%d max=%d min=%d precipitation=%d",
			n, len(d.Temperature2mMax), len(d.Temperature2mMin), len(d.PrecipitationProbabilityMax))
	}
	dates, err := d.Dates()
	if err != nil {
		return err
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return fmt.Errorf("daily.time not ascending at %d: %s after %s", i, d.Time[i], d.Time[i-1])
		}
	}
	return nil
}
