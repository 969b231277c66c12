package model

// OpenWeatherMapResponse is the raw current-weather payload. Temperatures
// are Kelvin, wind speeds meters per second. Main is a pointer so a missing
// block can be told apart from zero values; gust, visibility and clouds are
// optional upstream.
type OpenWeatherMapResponse struct {
	Coord      Coord              `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Main       *MainMetrics       `json:"main"`
	Wind       WindInfo           `json:"wind"`
	Visibility *int               `json:"visibility"`
	Clouds     *CloudInfo         `json:"clouds"`
	Dt         int64              `json:"dt"`
	Timezone   int                `json:"timezone"`
	Sys        SysInfo            `json:"sys"`
	Name       string             `json:"name"`
}

type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type WindInfo struct {
	Speed float64  `json:"speed"`
	Deg   int      `json:"deg"`
	Gust  *float64 `json:"gust"`
}

type CloudInfo struct {
	All int `json:"all"`
}

type SysInfo struct {
	Country string `json:"country"`
}
