package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/model"
	"github.com/fakhrymubarak/city-weather-api/internal/repository"
	"github.com/fakhrymubarak/city-weather-api/internal/service"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc ...service.WeatherServiceInterface) *WeatherHandler {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService(nil, nil)
	}
	return &WeatherHandler{
		WeatherService: weatherService,
	}
}

func (h *WeatherHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func (h *WeatherHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, model.ErrorResponse{Error: message})
}

// HandleHealth serves the root health check.
func (h *WeatherHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, model.HealthResponse{
		Status:  "ok",
		Message: "weather api is running",
	})
}

// HandleWeather serves GET /weather?city=<name>. It validates input before
// any outbound call, then maps service errors onto the HTTP taxonomy:
// invalid input 400, unknown city 404, provider or payload failure 500.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		h.writeError(w, http.StatusBadRequest, "missing 'city' query parameter")
		return
	}

	report, err := h.WeatherService.GetWeather(r.Context(), city)
	if err != nil {
		h.writeError(w, statusFromError(err), err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, report)
}

// statusFromError translates repository sentinels to HTTP status codes.
// A city the geocoder cannot resolve is treated as an unknown resource, so
// it maps to 404 rather than 400.
func statusFromError(err error) int {
	if errors.Is(err, repository.ErrCityNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
