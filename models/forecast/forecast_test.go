package forecast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func temps(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func weekDaily() Daily {
	return Daily{
		Time:                        []string{"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-04", "2025-05-05", "2025-05-06", "2025-05-07"},
		Temperature2mMax:            temps(21.3, 22.1, 19.8, 18.4, 20.0, 23.5, 24.1),
		Temperature2mMin:            temps(12.0, 13.4, 11.9, 10.2, 11.1, 14.6, 15.0),
		PrecipitationProbabilityMax: []*float64{pct(10), pct(0), pct(65), pct(80), nil, pct(5), pct(20)},
	}
}

func TestDaily_Validate(t *testing.T) {
	assert.NoError(t, weekDaily().Validate())

	misaligned := weekDaily()
	misaligned.Temperature2mMin = misaligned.Temperature2mMin[:6]
	assert.ErrorContains(t, misaligned.Validate(), "not aligned")

	unordered := weekDaily()
	unordered.Time[3], unordered.Time[4] = unordered.Time[4], unordered.Time[3]
	assert.ErrorContains(t, unordered.Validate(), "not ascending")

	empty := Daily{Time: []string{}, Temperature2mMax: []*float64{}, Temperature2mMin: []*float64{}, PrecipitationProbabilityMax: []*float64{}}
	assert.ErrorContains(t, empty.Validate(), "expected 7 forecast days, got 0")

	short := weekDaily()
	short.Time = short.Time[:6]
	short.Temperature2mMax = short.Temperature2mMax[:6]
	short.Temperature2mMin = short.Temperature2mMin[:6]
	short.PrecipitationProbabilityMax = short.PrecipitationProbabilityMax[:6]
	assert.ErrorContains(t, short.Validate(), "got 6")

	withNulls := weekDaily()
	withNulls.Temperature2mMax[2] = nil
	assert.NoError(t, withNulls.Validate())

	badDate := weekDaily()
	badDate.Time[0] = "May 1st"
	assert.Error(t, badDate.Validate())
}

func TestDaily_Dates(t *testing.T) {
	dates, err := weekDaily().Dates()
	require.NoError(t, err)
	require.Len(t, dates, 7)
	assert.Equal(t, 1, dates[0].Day())
	assert.Equal(t, 7, dates[6].Day())
}

func TestForecast_Decode(t *testing.T) {
	body := `{
		"latitude": 37.55, "longitude": 127.0, "timezone": "Asia/Seoul",
		"current": {"time": "2025-05-01T14:00", "interval": 900, "temperature_2m": 18.25,
			"relative_humidity_2m": 48, "apparent_temperature": 16.9, "is_day": 1,
			"wind_speed_10m": 7.6, "weather_code": null},
		"daily": {"time": ["2025-05-01", "2025-05-02"], "temperature_2m_max": [21.3, null],
			"temperature_2m_min": [null, 12.0], "precipitation_probability_max": [null, 40]},
		"hourly": {"time": ["2025-05-01T00:00"], "temperature_2m": [13.1]}
	}`

	var f Forecast
	require.NoError(t, json.Unmarshal([]byte(body), &f))

	assert.Equal(t, "Asia/Seoul", f.Timezone)
	assert.Nil(t, f.Current.WeatherCode)
	assert.Equal(t, 48.0, f.Current.RelativeHumidity2m)
	assert.Nil(t, f.Daily.PrecipitationProbabilityMax[0])
	assert.Equal(t, 21.3, *f.Daily.Temperature2mMax[0])
	assert.Nil(t, f.Daily.Temperature2mMax[1])
	assert.Nil(t, f.Daily.Temperature2mMin[0])
	assert.Equal(t, 2, f.Daily.Len())
	assert.ErrorContains(t, f.Daily.Validate(), "expected 7 forecast days")
}
