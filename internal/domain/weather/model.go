package weather

// CityQuery selects a location by name.
type CityQuery struct {
	City  string
	Units string
	Lang  string
}

// CoordsQuery selects a location by latitude and longitude.
type CoordsQuery struct {
	Lat   float64
	Lon   float64
	Units string
	Lang  string
}

// Coordinates is a lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Report is the current-conditions payload served to the frontend.
type Report struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Temperature int         `json:"temperature"`
	FeelsLike   int         `json:"feels_like"`
	TempMin     int         `json:"temp_min"`
	TempMax     int         `json:"temp_max"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	IconURL     string      `json:"icon_url"`
	WindSpeed   float64     `json:"wind_speed"`
	WindDeg     int         `json:"wind_deg"`
	Clouds      int         `json:"clouds"`
	Visibility  int         `json:"visibility"`
	Sunrise     string      `json:"sunrise"`
	Sunset      string      `json:"sunset"`
	Coordinates Coordinates `json:"coordinates"`
	Timestamp   string      `json:"timestamp"`
}

// ForecastEntry is one daily sample of the 5-day forecast.
type ForecastEntry struct {
	Date        string  `json:"date"`
	Temperature int     `json:"temperature"`
	TempMin     int     `json:"temp_min"`
	TempMax     int     `json:"temp_max"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	IconURL     string  `json:"icon_url"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Forecast groups the daily samples for a city.
type Forecast struct {
	City      string          `json:"city"`
	Country   string          `json:"country"`
	Forecasts []ForecastEntry `json:"forecasts"`
}
