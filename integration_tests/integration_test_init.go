package integrationtest

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	"github.com/fakhrymubarak/city-weather-api/internal/handler"
	"github.com/fakhrymubarak/city-weather-api/internal/middleware"
	"github.com/fakhrymubarak/city-weather-api/internal/repository"
	"github.com/fakhrymubarak/city-weather-api/internal/service"
)

// geoapifyFixtures holds canned forward-geocoding payloads keyed by the
// "text" query parameter. Unknown cities get an empty results array, which
// is how the real provider reports a miss.
var geoapifyFixtures = map[string]string{
	"Boston": `{"results":[{"city":"Boston","country_code":"us","formatted":"Boston, MA, United States of America","lat":42.3601,"lon":-71.0589}]}`,
	"London": `{"results":[{"city":"London","country_code":"gb","formatted":"London, United Kingdom","lat":51.5074,"lon":-0.1278}]}`,
}

const bostonWeatherFixture = `{
	"coord": {"lon": -71.0589, "lat": 42.3601},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"main": {"temp": 288.35, "feels_like": 287.93, "temp_min": 286.48, "temp_max": 290.12, "pressure": 1013, "humidity": 64},
	"wind": {"speed": 3.6, "deg": 220, "gust": 5.2},
	"visibility": 10000,
	"clouds": {"all": 0},
	"dt": 1717612800,
	"timezone": -14400,
	"sys": {"country": "US"},
	"name": "Boston"
}`

// mockGeoapifyAPI serves the canned geocoding fixtures.
func mockGeoapifyAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := geoapifyFixtures[r.URL.Query().Get("text")]
		if !ok {
			body = `{"results":[]}`
		}
		_, _ = w.Write([]byte(body))
	}))
}

// owmMock serves the canned weather fixture, or the configured failure
// status when set.
type owmMock struct {
	server     *httptest.Server
	failStatus int
	body       string
}

func mockOWMApi() *owmMock {
	m := &owmMock{body: bostonWeatherFixture}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.failStatus != 0 {
			http.Error(w, "provider failure", m.failStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(m.body))
	}))
	return m
}

func setupIntegrationTestServer() *httptest.Server {
	weatherRepo := repository.NewWeatherRepository()
	geoRepo := repository.NewGeocodingRepository()
	weatherService := service.NewWeatherService(geoRepo, weatherRepo)
	weatherHandler := handler.NewWeatherHandler(weatherService)

	router := mux.NewRouter()
	router.Use(middleware.CORS)
	router.HandleFunc("/", weatherHandler.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/weather", weatherHandler.HandleWeather).Methods(http.MethodGet, http.MethodOptions)

	return httptest.NewServer(router)
}
