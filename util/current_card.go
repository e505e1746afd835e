package util

import (
	"fmt"
	"math"
	"strconv"

	"weather-dashboard/models"
	"weather-dashboard/models/forecast"
)

// Metric is one labeled number on the current-conditions card.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CurrentCard is the formatted "now" summary for a place.
type CurrentCard struct {
	Header    string   `json:"header"`
	Metrics   []Metric `json:"metrics"`
	Condition string   `json:"condition"`
	Caption   string   `json:"caption"`
	IsDay     bool     `json:"is_day"`
}

func NewCurrentCard(place models.Place, f forecast.Forecast) CurrentCard {
	current := f.Current
	label := models.WeatherCodeLabel(current.WeatherCode)

	return CurrentCard{
		Header: fmt.Sprintf("Now in %s, %s", place.Name, place.Country),
		Metrics: []Metric{
			{Label: "Temperature (°C)", Value: fmt.Sprintf("%.1f", current.Temperature2m)},
			{Label: "Feels like (°C)", Value: fmt.Sprintf("%.1f", current.ApparentTemperature)},
			{Label: "Humidity (%)", Value: strconv.Itoa(int(math.Round(current.RelativeHumidity2m)))},
		},
		Condition: label,
		Caption: fmt.Sprintf("Condition: %s | Wind: %s km/h | Timezone: %s",
			label, strconv.FormatFloat(current.WindSpeed10m, 'f', -1, 64), place.Timezone),
		IsDay: current.IsDay == 1,
	}
}
