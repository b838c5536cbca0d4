package weather

// Lookup is the upstream query for either current conditions or the forecast.
// City takes precedence over coordinates when set.
type Lookup struct {
	City  string
	Lat   *float64
	Lon   *float64
	Units string
	Lang  string
	Count int
}

// CurrentPayload mirrors the OpenWeatherMap /weather response.
type CurrentPayload struct {
	Name       string      `json:"name"`
	Coord      Coordinates `json:"coord"`
	Sys        SysBlock    `json:"sys"`
	Main       MainBlock   `json:"main"`
	Weather    []Condition `json:"weather"`
	Wind       WindBlock   `json:"wind"`
	Clouds     CloudBlock  `json:"clouds"`
	Visibility int         `json:"visibility"`
}

// SysBlock carries the country code and solar times in epoch seconds.
type SysBlock struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CloudBlock is cloud cover in percent.
type CloudBlock struct {
	All int `json:"all"`
}

// ForecastPayload mirrors the OpenWeatherMap /forecast response.
type ForecastPayload struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []ForecastItem `json:"list"`
}

// ForecastItem is one 3-hour interval.
type ForecastItem struct {
	DtTxt   string      `json:"dt_txt"`
	Main    MainBlock   `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    WindBlock   `json:"wind"`
}

// MainBlock carries temperatures and atmospheric readings.
type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

// Condition is a weather description with its icon code.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WindBlock carries wind readings.
type WindBlock struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}
