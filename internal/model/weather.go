package model

// WeatherReport is the stable schema returned by GET /weather. Temperatures
// are Celsius rounded to one decimal, wind speeds meters per second,
// pressure hPa. Nullable pointers cover fields the provider may omit.
type WeatherReport struct {
	InputCity       string      `json:"input_city"`
	City            string      `json:"city"`
	Country         string      `json:"country"`
	Coordinates     Coordinates `json:"coordinates"`
	Conditions      Conditions  `json:"conditions"`
	Temperature     Temperature `json:"temperature"`
	Humidity        int         `json:"humidity"`
	Pressure        int         `json:"pressure"`
	Wind            Wind        `json:"wind"`
	VisibilityM     *int        `json:"visibility_m"`
	CloudCoverPct   *int        `json:"cloud_cover_pct"`
	Timestamp       int64       `json:"timestamp"`
	TimezoneOffsetS int         `json:"timezone_offset_s"`
	Source          string      `json:"source"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Conditions struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Temperature struct {
	CurrentC   float64 `json:"current_c"`
	FeelsLikeC float64 `json:"feels_like_c"`
	MinC       float64 `json:"min_c"`
	MaxC       float64 `json:"max_c"`
}

type Wind struct {
	SpeedMps     float64  `json:"speed_mps"`
	DirectionDeg int      `json:"direction_deg"`
	GustMps      *float64 `json:"gust_mps,omitempty"`
}
