package integrationtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fakhrymubarak/city-weather-api/internal/config"
	"github.com/fakhrymubarak/city-weather-api/internal/model"
)

type WeatherAPITestSuite struct {
	suite.Suite
	httpServer *httptest.Server
	mockGeo    *httptest.Server
	mockOWM    *owmMock
}

func (suite *WeatherAPITestSuite) SetupSuite() {
	os.Setenv("GEOCODING_API_KEY", "test_geo_key")
	os.Setenv("OPENWEATHER_API_KEY", "test_weather_key")

	suite.mockGeo = mockGeoapifyAPI()
	suite.mockOWM = mockOWMApi()

	viper.Set("geoapify.api_url", suite.mockGeo.URL)
	viper.Set("openweathermap.api_url", suite.mockOWM.server.URL)
	config.ReloadConfigForTest()

	suite.httpServer = setupIntegrationTestServer()
}

func (suite *WeatherAPITestSuite) TearDownSuite() {
	if suite.httpServer != nil {
		suite.httpServer.Close()
	}
	if suite.mockGeo != nil {
		suite.mockGeo.Close()
	}
	if suite.mockOWM != nil {
		suite.mockOWM.server.Close()
	}
	os.Unsetenv("GEOCODING_API_KEY")
	os.Unsetenv("OPENWEATHER_API_KEY")
}

func (suite *WeatherAPITestSuite) SetupTest() {
	suite.mockOWM.failStatus = 0
}

func (suite *WeatherAPITestSuite) getWeather(city string) *http.Response {
	resp, err := http.Get(suite.httpServer.URL + "/weather?city=" + url.QueryEscape(city))
	require.NoError(suite.T(), err)
	return resp
}

func (suite *WeatherAPITestSuite) TestHealthEndpoint() {
	resp, err := http.Get(suite.httpServer.URL + "/")
	require.NoError(suite.T(), err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var health model.HealthResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(suite.T(), "ok", health.Status)
}

func (suite *WeatherAPITestSuite) TestWeatherForKnownCity() {
	resp := suite.getWeather("Boston")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var report model.WeatherReport
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&report))

	// coordinates must match the geocoder's first result exactly
	assert.Equal(suite.T(), 42.3601, report.Coordinates.Lat)
	assert.Equal(suite.T(), -71.0589, report.Coordinates.Lon)

	assert.Equal(suite.T(), "Boston", report.InputCity)
	assert.Equal(suite.T(), "Boston", report.City)
	assert.Equal(suite.T(), "US", report.Country)
	assert.Equal(suite.T(), "Clear", report.Conditions.Label)
	assert.Equal(suite.T(), "clear sky", report.Conditions.Description)
	assert.Equal(suite.T(), 15.2, report.Temperature.CurrentC)
	assert.Equal(suite.T(), 64, report.Humidity)
	assert.Equal(suite.T(), 1013, report.Pressure)
	assert.Equal(suite.T(), 3.6, report.Wind.SpeedMps)
	require.NotNil(suite.T(), report.Wind.GustMps)
	assert.Equal(suite.T(), 5.2, *report.Wind.GustMps)
	require.NotNil(suite.T(), report.VisibilityM)
	assert.Equal(suite.T(), 10000, *report.VisibilityM)
	require.NotNil(suite.T(), report.CloudCoverPct)
	assert.Equal(suite.T(), 0, *report.CloudCoverPct)
	assert.Equal(suite.T(), int64(1717612800), report.Timestamp)
	assert.Equal(suite.T(), -14400, report.TimezoneOffsetS)
	assert.Equal(suite.T(), "openweathermap", report.Source)
}

func (suite *WeatherAPITestSuite) TestWeatherForUnknownCity() {
	resp := suite.getWeather("InvalidCityXYZ123")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)

	var errResp model.ErrorResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(suite.T(), errResp.Error, "InvalidCityXYZ123")
}

func (suite *WeatherAPITestSuite) TestWeatherWithEmptyCity() {
	resp := suite.getWeather("")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)

	var errResp model.ErrorResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(suite.T(), errResp.Error, "city")
}

func (suite *WeatherAPITestSuite) TestWeatherProviderFailure() {
	suite.mockOWM.failStatus = http.StatusInternalServerError

	resp := suite.getWeather("Boston")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)

	// no partial body: the response must be the error envelope only
	var errResp model.ErrorResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&errResp))
	assert.NotEmpty(suite.T(), errResp.Error)
}

func (suite *WeatherAPITestSuite) TestWeatherMalformedProviderPayload() {
	original := suite.mockOWM.body
	defer func() { suite.mockOWM.body = original }()
	suite.mockOWM.body = `{"weather": [], "dt": 1717612800}`

	resp := suite.getWeather("London")
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)

	var errResp model.ErrorResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(suite.T(), errResp.Error, "malformed")
}

func (suite *WeatherAPITestSuite) TestCORSHeadersPresent() {
	resp := suite.getWeather("Boston")
	defer resp.Body.Close()

	assert.Equal(suite.T(), "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWeatherAPITestSuite(t *testing.T) {
	suite.Run(t, new(WeatherAPITestSuite))
}
