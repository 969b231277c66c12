package service

import (
	"context"
	"fmt"
	"math"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/model"
	"github.com/fakhrymubarak/city-weather-api/internal/repository"
)

// WeatherServiceInterface defines the city-to-report lookup used by the handler
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) (*model.WeatherReport, error)
}

// WeatherService orchestrates the geocoding and weather repositories and
// reshapes the raw provider payload into the response schema.
type WeatherService struct {
	GeoRepo     repository.GeocodingRepository
	WeatherRepo repository.WeatherRepository
}

// NewWeatherService creates a new weather service instance. Nil repositories
// fall back to the provider-backed implementations.
func NewWeatherService(geoRepo repository.GeocodingRepository, weatherRepo repository.WeatherRepository) *WeatherService {
	if geoRepo == nil {
		geoRepo = repository.NewGeocodingRepository()
	}
	if weatherRepo == nil {
		weatherRepo = repository.NewWeatherRepository()
	}
	return &WeatherService{
		GeoRepo:     geoRepo,
		WeatherRepo: weatherRepo,
	}
}

// GetWeather resolves the city, fetches current conditions for the resolved
// coordinates, and returns the formatted report. The two upstream calls are
// strictly sequential; either both succeed or an error is returned.
func (s *WeatherService) GetWeather(ctx context.Context, city string) (*model.WeatherReport, error) {
	log := config.GetLogger()

	geo, err := s.GeoRepo.Resolve(ctx, city)
	if err != nil {
		log.Errorw("geocoding failed", "city", city, "error", err)
		return nil, err
	}
	log.Infow("city resolved", "city", city, "lat", geo.Latitude, "lon", geo.Longitude)

	raw, err := s.WeatherRepo.CurrentByCoordinates(ctx, geo.Latitude, geo.Longitude)
	if err != nil {
		log.Errorw("weather fetch failed", "city", city, "lat", geo.Latitude, "lon", geo.Longitude, "error", err)
		return nil, err
	}

	report, err := formatReport(city, geo, raw)
	if err != nil {
		log.Errorw("weather payload rejected", "city", city, "lat", geo.Latitude, "lon", geo.Longitude, "error", err)
		return nil, err
	}
	log.Infow("weather report built", "city", city, "resolved_city", report.City)
	return report, nil
}

// KelvinToCelsius converts an absolute temperature to Celsius rounded to one
// decimal place.
func KelvinToCelsius(k float64) float64 {
	return math.Round((k-273.15)*10) / 10
}

// formatReport maps the raw provider payload onto the response schema. The
// main block and at least one weather entry are required; everything else is
// optional and carried through as-is. Coordinates come from the geocoder,
// not the provider echo.
func formatReport(inputCity string, geo *model.GeoResult, raw *model.OpenWeatherMapResponse) (*model.WeatherReport, error) {
	if raw.Main == nil {
		return nil, fmt.Errorf("%w: missing main block", repository.ErrMalformedPayload)
	}
	if len(raw.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather conditions", repository.ErrMalformedPayload)
	}

	city := raw.Name
	if city == "" {
		city = geo.ResolvedCity
	}
	country := raw.Sys.Country
	if country == "" {
		country = geo.Country
	}

	cond := raw.Weather[0]
	report := &model.WeatherReport{
		InputCity: inputCity,
		City:      city,
		Country:   country,
		Coordinates: model.Coordinates{
			Lat: geo.Latitude,
			Lon: geo.Longitude,
		},
		Conditions: model.Conditions{
			Label:       cond.Main,
			Description: cond.Description,
			Icon:        cond.Icon,
		},
		Temperature: model.Temperature{
			CurrentC:   KelvinToCelsius(raw.Main.Temp),
			FeelsLikeC: KelvinToCelsius(raw.Main.FeelsLike),
			MinC:       KelvinToCelsius(raw.Main.TempMin),
			MaxC:       KelvinToCelsius(raw.Main.TempMax),
		},
		Humidity: raw.Main.Humidity,
		Pressure: raw.Main.Pressure,
		Wind: model.Wind{
			SpeedMps:     raw.Wind.Speed,
			DirectionDeg: raw.Wind.Deg,
			GustMps:      raw.Wind.Gust,
		},
		VisibilityM:     raw.Visibility,
		Timestamp:       raw.Dt,
		TimezoneOffsetS: raw.Timezone,
		Source:          "openweathermap",
	}
	if raw.Clouds != nil {
		report.CloudCoverPct = &raw.Clouds.All
	}
	return report, nil
}
