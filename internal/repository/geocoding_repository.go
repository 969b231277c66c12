package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/model"
)

// GeocodingRepository resolves a free-text city name to coordinates.
type GeocodingRepository interface {
	Resolve(ctx context.Context, city string) (*model.GeoResult, error)
}

// geocodingRepository implements GeocodingRepository against Geoapify
type geocodingRepository struct {
	httpClient *http.Client
}

// NewGeocodingRepository creates a new geocoding repository instance
func NewGeocodingRepository(httpClient ...*http.Client) GeocodingRepository {
	client := &http.Client{Timeout: config.GetHTTPClientTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &geocodingRepository{httpClient: client}
}

// Resolve issues a single forward-geocoding request and returns the first
// matching result. Zero results means the city does not exist as far as the
// provider is concerned.
func (r *geocodingRepository) Resolve(ctx context.Context, city string) (*model.GeoResult, error) {
	apiKey := config.GetGeocodingAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEOCODING_API_KEY", ErrAPIKeyMissing)
	}

	q := url.Values{}
	q.Set("text", city)
	q.Set("format", "json")
	q.Set("apiKey", apiKey)
	reqURL := config.GetGeoapifyApiUrl() + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoding request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocoding: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocoding provider returned status %d", ErrUpstream, resp.StatusCode)
	}

	var data model.GeoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: geocoding: %v", ErrMalformedPayload, err)
	}

	if len(data.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}

	first := data.Results[0]
	return &model.GeoResult{
		ResolvedCity: first.City,
		Country:      first.CountryCode,
		Latitude:     first.Lat,
		Longitude:    first.Lon,
	}, nil
}
