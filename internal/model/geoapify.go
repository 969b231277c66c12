package model

// GeoapifyResponse mirrors the relevant slice of the Geoapify forward
// geocoding payload (requested with format=json).
type GeoapifyResponse struct {
	Results []GeoapifyResult `json:"results"`
}

type GeoapifyResult struct {
	City        string  `json:"city"`
	CountryCode string  `json:"country_code"`
	Formatted   string  `json:"formatted"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// GeoResult is the resolved location produced by the geocoder and consumed
// by the weather lookup. It lives for a single request.
type GeoResult struct {
	ResolvedCity string
	Country      string
	Latitude     float64
	Longitude    float64
}
