package models

const DEFAULT_TIMEZONE = "UTC"

// GeocodingResponse matches the Open-Meteo GET /v1/search response.
type GeocodingResponse struct {
	Results          []GeocodingResult `json:"results,omitempty"`
	GenerationTimeMs float64           `json:"generationtime_ms,omitempty"`
}

// GeocodingResult is one match in "results". Country and timezone are
// absent for some places.
type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int     `json:"population,omitempty"`
}

// FirstPlace returns the best match as a Place, or false when there are no
// results.
func (r *GeocodingResponse) FirstPlace() (*Place, bool) {
	if r == nil || len(r.Results) == 0 {
		return nil, false
	}
	p := r.Results[0].ToPlace()
	return &p, true
}

// ToPlace defaults a missing timezone to UTC; a missing country stays empty.
func (g GeocodingResult) ToPlace() Place {
	tz := g.Timezone
	if tz == "" {
		tz = DEFAULT_TIMEZONE
	}
	return Place{
		Name:     g.Name,
		Lat:      g.Latitude,
		Lon:      g.Longitude,
		Country:  g.Country,
		Timezone: tz,
	}
}
