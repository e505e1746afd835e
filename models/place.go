package models

// Place is the first geocoding match for a city query.
type Place struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}
