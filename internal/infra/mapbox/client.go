package mapbox

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/h0m10/citypulse-api/internal/domain/geocode"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const (
	defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"
	language       = "es"
)

// Client is the Mapbox geocoding v5 client.
type Client struct {
	token string
	api   *upstream.Client
}

// NewClient creates a new Mapbox client.
func NewClient(token, baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token: token,
		api:   upstream.New("mapbox", baseURL, upstream.WithTimeout(timeout)),
	}
}

// Reverse looks up places and countries at a coordinate. Mapbox expects lon first.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (geocode.FeatureCollection, error) {
	params := c.params()
	params.Set("types", "place,country")

	path := "/" + formatCoord(lon) + "," + formatCoord(lat) + ".json"
	var out geocode.FeatureCollection
	if err := c.api.GetJSON(ctx, path, params, &out); err != nil {
		return geocode.FeatureCollection{}, err
	}
	return out, nil
}

// Search finds places matching a free-text query.
func (c *Client) Search(ctx context.Context, query string, limit int) (geocode.FeatureCollection, error) {
	params := c.params()
	params.Set("types", "place")
	params.Set("limit", strconv.Itoa(limit))

	path := "/" + url.PathEscape(query) + ".json"
	var out geocode.FeatureCollection
	if err := c.api.GetJSON(ctx, path, params, &out); err != nil {
		return geocode.FeatureCollection{}, err
	}
	return out, nil
}

func (c *Client) params() url.Values {
	params := url.Values{}
	params.Set("access_token", c.token)
	params.Set("language", language)
	return params
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ geocode.Client = (*Client)(nil)
