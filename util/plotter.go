package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"weather-dashboard/models/forecast"
)

const (
	TEMPERATURE_CHART_TITLE   = "7-day Temperatures"
	PRECIPITATION_CHART_TITLE = "Daily Precipitation Probability"
	MAX_TEMPERATURE_SERIES    = "Max °C"
	MIN_TEMPERATURE_SERIES    = "Min °C"
	PRECIPITATION_SERIES      = "Precipitation %"

	chartWidth  = "700px"
	chartHeight = "400px"

	// echarts skips "-" values
	missingValue = "-"
)

// DailyTemperatureSeries returns the x-axis dates and the max/min points in
// the order of daily.Time. Null temperatures leave a gap in the line.
func DailyTemperatureSeries(daily forecast.Daily) ([]string, []opts.LineData, []opts.LineData) {
	dates := append([]string(nil), daily.Time...)
	return dates, linePoints(daily.Temperature2mMax), linePoints(daily.Temperature2mMin)
}

func linePoints(values []*float64) []opts.LineData {
	points := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		if v == nil {
			points = append(points, opts.LineData{Value: missingValue})
			continue
		}
		points = append(points, opts.LineData{Value: *v})
	}
	return points
}

// DailyPrecipitationSeries returns one bar per day; days without a
// probability are left empty.
func DailyPrecipitationSeries(daily forecast.Daily) ([]string, []opts.BarData) {
	dates := append([]string(nil), daily.Time...)
	bars := make([]opts.BarData, 0, len(daily.PrecipitationProbabilityMax))
	for _, v := range daily.PrecipitationProbabilityMax {
		if v == nil {
			bars = append(bars, opts.BarData{Value: missingValue})
			continue
		}
		bars = append(bars, opts.BarData{Value: *v})
	}
	return dates, bars
}

// NewDailyTemperatureChart plots max and min temperature per day.
func NewDailyTemperatureChart(daily forecast.Daily) *charts.Line {
	dates, tmax, tmin := DailyTemperatureSeries(daily)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: TEMPERATURE_CHART_TITLE,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: TEMPERATURE_CHART_TITLE}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "°C",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	withMarkers := charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)})
	line.SetXAxis(dates).
		AddSeries(MAX_TEMPERATURE_SERIES, tmax, withMarkers).
		AddSeries(MIN_TEMPERATURE_SERIES, tmin, withMarkers)

	return line
}

// NewDailyPrecipitationChart plots the max precipitation probability per day.
func NewDailyPrecipitationChart(daily forecast.Daily) *charts.Bar {
	dates, bars := DailyPrecipitationSeries(daily)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: PRECIPITATION_CHART_TITLE,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: PRECIPITATION_CHART_TITLE}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "%",
			Min:       0,
			Max:       100,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	bar.SetXAxis(dates).AddSeries(PRECIPITATION_SERIES, bars)

	return bar
}

// RenderDailyCharts writes an HTML page with the temperature chart stacked
// over the precipitation chart.
func RenderDailyCharts(w io.Writer, daily forecast.Daily) error {
	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		NewDailyTemperatureChart(daily),
		NewDailyPrecipitationChart(daily),
	)
	return page.Render(w)
}
