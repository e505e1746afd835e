package handlers

import (
	"html/template"

	"weather-dashboard/models"
	"weather-dashboard/util"
)

type dashboardPage struct {
	City           string
	Presets        []string
	SelectedPreset string
	Dashboard      *models.Dashboard
	Card           *util.CurrentCard
	ChartsURL      string
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather Dashboard</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; min-height: 100vh; }
aside { width: 260px; padding: 1.5rem; background: #f0f2f6; }
main { flex: 1; padding: 1.5rem 2rem; }
label { display: block; margin-top: 1rem; font-size: .9rem; }
input, select, button { width: 100%; margin-top: .3rem; padding: .4rem; box-sizing: border-box; }
.columns { display: flex; gap: 2rem; }
.columns > section { flex: 1; }
.metrics { display: flex; gap: 1.5rem; }
.metric .label { font-size: .85rem; color: #555; }
.metric .value { font-size: 2rem; }
.caption, footer { font-size: .8rem; color: #777; }
.info { background: #e8f0fe; padding: .8rem; border-radius: 4px; }
.error { background: #fde8e8; color: #9b1c1c; padding: .8rem; border-radius: 4px; }
iframe { border: 0; width: 100%; height: 860px; }
</style>
</head>
<body>
<aside>
  <h2>Location</h2>
  <form method="get" action="/">
    <label for="city">City name</label>
    <input id="city" name="city" value="{{.City}}" placeholder="e.g., Seoul, Tokyo, New York">
    <button type="submit">Show weather</button>
    <label for="preset">Quick select</label>
    <select id="preset" name="preset">
      {{- range .Presets}}
      <option value="{{.}}"{{if eq . $.SelectedPreset}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
    <button type="submit" name="use_preset" value="1">Use quick select</button>
  </form>
</aside>
<main>
  <h1>☁️ Real-time Weather Dashboard</h1>
  {{- with .Dashboard}}
  {{- if eq .State "prompt"}}
  <div class="info">{{.Message}}</div>
  {{- else if ne .State "rendered"}}
  <div class="error">{{.Message}}</div>
  {{- end}}
  {{- end}}
  {{- with .Card}}
  <div class="columns">
    <section>
      <h3>{{.Header}}</h3>
      <div class="metrics">
        {{- range .Metrics}}
        <div class="metric"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
        {{- end}}
      </div>
      <p class="caption">{{.Caption}}</p>
    </section>
    <section>
      <h3>7-day Overview</h3>
      <iframe src="{{$.ChartsURL}}" title="7-day Overview"></iframe>
    </section>
  </div>
  <footer>Data: Open-Meteo.com | No API key required</footer>
  {{- end}}
</main>
</body>
</html>
`))
