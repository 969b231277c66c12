package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/handler"
	"github.com/fakhrymubarak/city-weather-api/internal/middleware"
)

func main() {
	log := config.GetLogger()

	// Missing keys are a startup warning only; requests made without them
	// fail with a 500 at the provider boundary.
	if config.GetGeocodingAPIKey() == "" {
		log.Warnw("GEOCODING_API_KEY is not set; geocoding requests will fail")
	}
	if config.GetOpenWeatherMapAPIKey() == "" {
		log.Warnw("OPENWEATHER_API_KEY is not set; weather requests will fail")
	}

	weatherHandler := handler.NewWeatherHandler()

	router := mux.NewRouter()
	router.Use(middleware.CORS)
	router.HandleFunc("/", weatherHandler.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/weather", weatherHandler.HandleWeather).Methods(http.MethodGet, http.MethodOptions)

	port := config.GetServerPort()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: config.GetServerTimeout("read_header_timeout"),
		ReadTimeout:       config.GetServerTimeout("read_timeout"),
		WriteTimeout:      config.GetServerTimeout("write_timeout"),
		IdleTimeout:       config.GetServerTimeout("idle_timeout"),
	}

	log.Infow("weather api server running", "port", port)
	log.Fatal(srv.ListenAndServe())
}
