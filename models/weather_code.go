package models

const UNKNOWN_WEATHER_LABEL = "Unknown"

// WeatherCodeMap translates WMO weather interpretation codes.
var WeatherCodeMap = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Dense drizzle",
	56: "Freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Rain",
	65: "Heavy rain",
	66: "Freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Rain showers",
	81: "Rain showers",
	82: "Violent rain showers",
	85: "Snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

// WeatherCodeLabel returns the label for code, "Unknown" when code is nil or
// not in the table.
func WeatherCodeLabel(code *int) string {
	if code == nil {
		return UNKNOWN_WEATHER_LABEL
	}
	if label, ok := WeatherCodeMap[*code]; ok {
		return label
	}
	return UNKNOWN_WEATHER_LABEL
}
