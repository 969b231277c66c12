package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/model"
)

// WeatherRepository fetches current conditions for coordinates.
type WeatherRepository interface {
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (*model.OpenWeatherMapResponse, error)
}

// weatherRepository implements WeatherRepository against OpenWeatherMap
type weatherRepository struct {
	httpClient *http.Client
}

// NewWeatherRepository creates a new weather repository instance
func NewWeatherRepository(httpClient ...*http.Client) WeatherRepository {
	client := &http.Client{Timeout: config.GetHTTPClientTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{httpClient: client}
}

// CurrentByCoordinates retrieves the raw current-weather payload. Units are
// the provider's defaults (Kelvin); conversion happens in the service layer.
func (r *weatherRepository) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*model.OpenWeatherMapResponse, error) {
	apiKey := config.GetOpenWeatherMapAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENWEATHER_API_KEY", ErrAPIKeyMissing)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", apiKey)
	reqURL := config.GetOpenWeatherApiUrl() + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: weather: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather provider returned status %d", ErrUpstream, resp.StatusCode)
	}

	var data model.OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: weather: %v", ErrMalformedPayload, err)
	}

	return &data, nil
}
