package openweather

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/h0m10/citypulse-api/internal/domain/weather"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches current conditions and forecasts from OpenWeatherMap.
type Client struct {
	apiKey string
	api    *upstream.Client
}

// NewClient builds an API client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		api:    upstream.New("openweather", baseURL, upstream.WithTimeout(timeout)),
	}
}

// Current calls /weather by city name or coordinates.
func (c *Client) Current(ctx context.Context, lookup weather.Lookup) (weather.CurrentPayload, error) {
	var out weather.CurrentPayload
	if err := c.api.GetJSON(ctx, "/weather", c.query(lookup), &out); err != nil {
		return weather.CurrentPayload{}, err
	}
	return out, nil
}

// Forecast calls /forecast for 3-hour intervals.
func (c *Client) Forecast(ctx context.Context, lookup weather.Lookup) (weather.ForecastPayload, error) {
	var out weather.ForecastPayload
	if err := c.api.GetJSON(ctx, "/forecast", c.query(lookup), &out); err != nil {
		return weather.ForecastPayload{}, err
	}
	return out, nil
}

func (c *Client) query(lookup weather.Lookup) url.Values {
	params := url.Values{}
	switch {
	case lookup.City != "":
		params.Set("q", lookup.City)
	case lookup.Lat != nil && lookup.Lon != nil:
		params.Set("lat", strconv.FormatFloat(*lookup.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(*lookup.Lon, 'f', -1, 64))
	}
	params.Set("appid", c.apiKey)
	if lookup.Units != "" {
		params.Set("units", lookup.Units)
	}
	if lookup.Lang != "" {
		params.Set("lang", lookup.Lang)
	}
	if lookup.Count > 0 {
		params.Set("cnt", strconv.Itoa(lookup.Count))
	}
	return params
}

var _ weather.Client = (*Client)(nil)
